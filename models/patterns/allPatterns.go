package patterns

import (
	"context"
	"errors"
)

type PatternSummary struct {
	HighRiskLocations []*HighRiskLocation `json:"high_risk_locations"`
	TimePatterns      *TimePatterns       `json:"time_patterns"`
	RepeatSuspects    []*RepeatSuspect    `json:"repeat_suspects"`
	AreaClustering    *AreaClustering     `json:"area_clustering"`
	SuspiciousZones   []*SuspiciousZone   `json:"suspicious_zones"`
}

// GetAllPatterns runs every detector with its default threshold and bundles
// the results for presentation. Detectors are independent: a failure in one
// leaves its section empty while the rest still populate, and the joined
// error reports what failed. A fresh full result is cached (see
// patternCache.go); callers wanting to bypass the cache pass refresh=true.
func GetAllPatterns(ctx context.Context, refresh bool) (*PatternSummary, error) {
	if !refresh {
		if cached, ok := getCachedSummary(); ok {
			return cached, nil
		}
	}

	summary := PatternSummary{}
	var errs []error

	var err error
	if summary.HighRiskLocations, err = DetectHighRiskLocations(ctx, DefaultHotspotThreshold); err != nil {
		errs = append(errs, err)
	}
	if summary.TimePatterns, err = DetectTimePatterns(ctx); err != nil {
		errs = append(errs, err)
	}
	if summary.RepeatSuspects, err = DetectRepeatSuspects(ctx); err != nil {
		errs = append(errs, err)
	}
	if summary.AreaClustering, err = DetectAreaClustering(ctx); err != nil {
		errs = append(errs, err)
	}
	if summary.SuspiciousZones, err = DetectSuspiciousZones(ctx, DefaultZoneThreshold); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &summary, errors.Join(errs...)
	}

	setCachedSummary(&summary)
	return &summary, nil
}
