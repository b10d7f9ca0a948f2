package patterns

import (
	"context"
	"sort"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type DayCount struct {
	DayName string `json:"day_name"`
	DayNum  int    `json:"day_num"`
	Count   int    `json:"count"`
}

type MonthNameCount struct {
	MonthName string `json:"month_name"`
	MonthNum  int    `json:"month_num"`
	Count     int    `json:"count"`
}

type TimePatterns struct {
	PeakHours  []*HourCount      `json:"peak_hours"`
	PeakDays   []*DayCount       `json:"peak_days"`
	PeakMonths []*MonthNameCount `json:"peak_months"`
}

// DetectTimePatterns buckets missing dates by hour of day, day of week and
// month, each ordered by count descending. Purely descriptive; it feeds the
// patterns page, not the alert driver. Bucketing runs in Go over a single
// date scan so the query stays portable across MySQL and sqlite.
func DetectTimePatterns(ctx context.Context) (*TimePatterns, error) {
	var dates []time.Time

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&models.MissingChild{}).
		Pluck("missing_date", &dates).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}

	hours := map[int]int{}
	days := map[time.Weekday]int{}
	months := map[time.Month]int{}
	for _, d := range dates {
		hours[d.Hour()]++
		days[d.Weekday()]++
		months[d.Month()]++
	}

	result := TimePatterns{}
	for hour, count := range hours {
		result.PeakHours = append(result.PeakHours, &HourCount{Hour: hour, Count: count})
	}
	for day, count := range days {
		result.PeakDays = append(result.PeakDays, &DayCount{
			DayName: day.String(),
			DayNum:  int(day) + 1, // 1=Sunday, matching the store's DAYOFWEEK convention
			Count:   count,
		})
	}
	for month, count := range months {
		result.PeakMonths = append(result.PeakMonths, &MonthNameCount{
			MonthName: month.String(),
			MonthNum:  int(month),
			Count:     count,
		})
	}

	sort.SliceStable(result.PeakHours, func(i, j int) bool {
		return result.PeakHours[i].Count > result.PeakHours[j].Count
	})
	sort.SliceStable(result.PeakDays, func(i, j int) bool {
		return result.PeakDays[i].Count > result.PeakDays[j].Count
	})
	sort.SliceStable(result.PeakMonths, func(i, j int) bool {
		return result.PeakMonths[i].Count > result.PeakMonths[j].Count
	})
	return &result, nil
}
