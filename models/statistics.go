package models

import (
	"context"
	"sort"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
)

type StatusCount struct {
	CaseStatus CaseStatus `json:"case_status"`
	Count      int        `json:"count"`
}

type GenderCount struct {
	Gender Gender `json:"gender"`
	Count  int    `json:"count"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"age_group"`
	Count    int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type CityCount struct {
	MissingLocationCity string `json:"missing_location_city"`
	Count               int    `json:"count"`
}

type Statistics struct {
	TotalMissing      int              `json:"total_missing"`
	TotalFound        int              `json:"total_found"`
	ByStatus          []*StatusCount   `json:"by_status"`
	ByGender          []*GenderCount   `json:"by_gender"`
	ByAgeGroup        []*AgeGroupCount `json:"by_age_group"`
	MonthlyTrends     []*MonthCount    `json:"monthly_trends"`
	LocationFrequency []*CityCount     `json:"location_frequency"`
}

const statisticsCacheKey = "stats:dashboard"

// GetStatistics aggregates the dashboard counters. Results are cached in
// redis for a short TTL; pass refresh=true to bypass the cache.
func GetStatistics(ctx context.Context, refresh bool) (*Statistics, error) {
	if !refresh {
		var cached Statistics
		if hit, err := config.GetRedisObject(statisticsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	db := config.GetDB()
	stats := Statistics{}

	var totalMissing, totalFound int64
	if err := db.WithContext(ctx).Model(&MissingChild{}).Count(&totalMissing).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	if err := db.WithContext(ctx).Model(&FoundChild{}).Count(&totalFound).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	stats.TotalMissing = int(totalMissing)
	stats.TotalFound = int(totalFound)

	if err := db.WithContext(ctx).Model(&MissingChild{}).
		Select("case_status, COUNT(*) AS count").
		Group("case_status").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	if err := db.WithContext(ctx).Model(&MissingChild{}).
		Select("gender, COUNT(*) AS count").
		Group("gender").
		Scan(&stats.ByGender).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	// Age groups and monthly trends are bucketed in Go: the bucketing
	// functions differ between MySQL and sqlite, and the row counts here are
	// small.
	var rows []struct {
		Age         int
		MissingDate time.Time
	}
	if err := db.WithContext(ctx).Model(&MissingChild{}).
		Select("age, missing_date").
		Scan(&rows).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	ageGroups := map[string]int{}
	months := map[string]int{}
	for _, r := range rows {
		ageGroups[ageGroupLabel(r.Age)]++
		months[r.MissingDate.Format("2006-01")]++
	}
	for _, label := range []string{"0-4", "5-9", "10-14", "15+"} {
		if n, ok := ageGroups[label]; ok {
			stats.ByAgeGroup = append(stats.ByAgeGroup, &AgeGroupCount{AgeGroup: label, Count: n})
		}
	}
	for month, n := range months {
		stats.MonthlyTrends = append(stats.MonthlyTrends, &MonthCount{Month: month, Count: n})
	}
	// Most recent months first, capped at 12.
	sort.Slice(stats.MonthlyTrends, func(i, j int) bool {
		return stats.MonthlyTrends[i].Month > stats.MonthlyTrends[j].Month
	})
	if len(stats.MonthlyTrends) > 12 {
		stats.MonthlyTrends = stats.MonthlyTrends[:12]
	}

	if err := db.WithContext(ctx).Model(&MissingChild{}).
		Select("missing_location_city, COUNT(*) AS count").
		Group("missing_location_city").
		Order("count DESC").
		Limit(10).
		Scan(&stats.LocationFrequency).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	_ = config.SetRedisObject(statisticsCacheKey, &stats, 2*time.Minute)
	return &stats, nil
}

func ageGroupLabel(age int) string {
	switch {
	case age < 5:
		return "0-4"
	case age < 10:
		return "5-9"
	case age < 15:
		return "10-14"
	default:
		return "15+"
	}
}
