package models_test

import (
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models"
)

func TestExportStatisticsExcel(t *testing.T) {
	ctx := setupTestDB(t)

	mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-060",
		FirstName:           "Ada",
		LastName:            "Nwosu",
		Age:                 4,
		Gender:              models.GenderFemale,
		MissingDate:         time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
		MissingLocationCity: "Springfield",
	})
	mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-061",
		FirstName:           "Emeka",
		LastName:            "Obi",
		Age:                 12,
		Gender:              models.GenderMale,
		MissingDate:         time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		MissingLocationCity: "Springfield",
	})

	f, err := models.ExportStatisticsExcel(ctx)
	if err != nil {
		t.Fatalf("ExportStatisticsExcel: %v", err)
	}
	defer f.Close()

	wantSheets := []string{"Overview", "By Status", "By Gender", "By Age Group", "Monthly Trends", "Top Cities"}
	sheets := f.GetSheetList()
	if len(sheets) != len(wantSheets) {
		t.Fatalf("expected %d sheets, got %v", len(wantSheets), sheets)
	}
	for i, want := range wantSheets {
		if sheets[i] != want {
			t.Fatalf("expected sheet %q at position %d, got %q", want, i, sheets[i])
		}
	}

	total, err := f.GetCellValue("Overview", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "2" {
		t.Fatalf("expected total missing 2, got %q", total)
	}

	city, err := f.GetCellValue("Top Cities", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if city != "Springfield" {
		t.Fatalf("expected Springfield as top city, got %q", city)
	}
}
