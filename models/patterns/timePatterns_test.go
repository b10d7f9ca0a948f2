package patterns_test

import (
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models/patterns"
)

func TestDetectTimePatternsBuckets(t *testing.T) {
	ctx := setupTestDB(t)

	// Two cases at 14:00 on Mondays in June, one at 08:00 on a Friday in July.
	monday := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-400", age: 9, city: "Springfield", missing: monday})
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-401", age: 10, city: "Springfield", missing: monday.AddDate(0, 0, 7)})
	mustCreateCase(t, ctx, caseSpec{caseNumber: "CF-402", age: 8, city: "Springfield",
		missing: time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)})

	result, err := patterns.DetectTimePatterns(ctx)
	if err != nil {
		t.Fatalf("DetectTimePatterns: %v", err)
	}

	if len(result.PeakHours) != 2 {
		t.Fatalf("expected 2 hour buckets, got %d", len(result.PeakHours))
	}
	if result.PeakHours[0].Hour != 14 || result.PeakHours[0].Count != 2 {
		t.Fatalf("expected 14:00 bucket with 2 cases first, got %+v", result.PeakHours[0])
	}

	if result.PeakDays[0].DayName != "Monday" || result.PeakDays[0].Count != 2 {
		t.Fatalf("expected Monday bucket first, got %+v", result.PeakDays[0])
	}
	// DAYOFWEEK convention: Sunday=1, so Monday=2.
	if result.PeakDays[0].DayNum != 2 {
		t.Fatalf("expected day_num 2 for Monday, got %d", result.PeakDays[0].DayNum)
	}

	if result.PeakMonths[0].MonthName != "June" || result.PeakMonths[0].Count != 2 {
		t.Fatalf("expected June bucket first, got %+v", result.PeakMonths[0])
	}
}

func TestGetAllPatternsSurvivesEmptyDatabase(t *testing.T) {
	ctx := setupTestDB(t)

	summary, err := patterns.GetAllPatterns(ctx, false)
	if err != nil {
		t.Fatalf("GetAllPatterns: %v", err)
	}
	if summary == nil {
		t.Fatalf("expected a summary even with no data")
	}
	if len(summary.HighRiskLocations) != 0 || len(summary.RepeatSuspects) != 0 {
		t.Fatalf("expected empty detector results, got %+v", summary)
	}
}
