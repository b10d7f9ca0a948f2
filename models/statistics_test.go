package models_test

import (
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models"
)

func TestGetStatisticsAggregates(t *testing.T) {
	ctx := setupTestDB(t)

	mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber: "CF-700", FirstName: "Amina", LastName: "Bello",
		Age: 3, Gender: models.GenderFemale,
		MissingDate:         time.Date(2026, 6, 5, 9, 0, 0, 0, time.UTC),
		MissingLocationCity: "Springfield",
	})
	mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber: "CF-701", FirstName: "Chidi", LastName: "Okoro",
		Age: 11, Gender: models.GenderMale,
		MissingDate:         time.Date(2026, 7, 12, 9, 0, 0, 0, time.UTC),
		MissingLocationCity: "Springfield",
	})
	mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber: "CF-702", FirstName: "Ngozi", LastName: "Eze",
		Age: 12, Gender: models.GenderFemale,
		MissingDate:         time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC),
		MissingLocationCity: "Shelbyville",
	})

	stats, err := models.GetStatistics(ctx, true)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}

	if stats.TotalMissing != 3 {
		t.Fatalf("expected 3 missing, got %d", stats.TotalMissing)
	}
	if stats.TotalFound != 0 {
		t.Fatalf("expected 0 found, got %d", stats.TotalFound)
	}

	ageGroups := map[string]int{}
	for _, g := range stats.ByAgeGroup {
		ageGroups[g.AgeGroup] = g.Count
	}
	if ageGroups["0-4"] != 1 || ageGroups["10-14"] != 2 {
		t.Fatalf("unexpected age groups %v", ageGroups)
	}

	if len(stats.MonthlyTrends) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(stats.MonthlyTrends))
	}
	// Most recent month first.
	if stats.MonthlyTrends[0].Month != "2026-07" || stats.MonthlyTrends[0].Count != 2 {
		t.Fatalf("unexpected top month %+v", stats.MonthlyTrends[0])
	}

	if len(stats.LocationFrequency) == 0 || stats.LocationFrequency[0].MissingLocationCity != "Springfield" {
		t.Fatalf("expected Springfield as most frequent city, got %+v", stats.LocationFrequency)
	}
}
