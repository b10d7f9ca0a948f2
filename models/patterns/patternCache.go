package patterns

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
)

const patternCacheKey = "patterns:summary"

func patternCacheEnabled() bool {
	v := strings.TrimSpace(os.Getenv("ENABLE_PATTERN_CACHE"))
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "on")
}

func patternCacheTTL() time.Duration {
	// Env: PATTERN_CACHE_TTL_SECONDS (default 120s)
	ttl := 120
	if v := strings.TrimSpace(os.Getenv("PATTERN_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

func getCachedSummary() (*PatternSummary, bool) {
	if !patternCacheEnabled() {
		return nil, false
	}
	var summary PatternSummary
	hit, err := config.GetRedisObject(patternCacheKey, &summary)
	if err != nil || !hit {
		return nil, false
	}
	return &summary, true
}

func setCachedSummary(summary *PatternSummary) {
	if !patternCacheEnabled() {
		return
	}
	_ = config.SetRedisObject(patternCacheKey, summary, patternCacheTTL())
}
