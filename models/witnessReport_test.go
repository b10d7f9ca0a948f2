package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

func TestCreateWitnessReportDefaultsCredibility(t *testing.T) {
	ctx := setupTestDB(t)

	child := mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-050",
		FirstName:           "Amara",
		LastName:            "Obi",
		Age:                 8,
		Gender:              models.GenderFemale,
		MissingLocationCity: "Springfield",
	})

	report, err := models.CreateWitnessReport(ctx, &models.NewWitnessReport{
		ChildId:        child.ID,
		WitnessName:    utils.NewPtr("Mrs. Adeyemi"),
		WitnessContact: utils.NewPtr("08012345678"),
		ReportDate:     time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
		Description:    utils.NewPtr("Saw the child near the market"),
	})
	if err != nil {
		t.Fatalf("CreateWitnessReport: %v", err)
	}
	if report.CredibilityScore != 5 {
		t.Fatalf("expected default credibility 5, got %d", report.CredibilityScore)
	}
	if report.ReportedBy != 1 {
		t.Fatalf("expected reported_by from context, got %d", report.ReportedBy)
	}

	fetched, err := models.GetWitnessReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("GetWitnessReport: %v", err)
	}
	if fetched.WitnessName == nil || *fetched.WitnessName != "Mrs. Adeyemi" {
		t.Fatalf("unexpected witness name %v", fetched.WitnessName)
	}
}

func TestCreateWitnessReportUnknownChild(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := models.CreateWitnessReport(ctx, &models.NewWitnessReport{
		ChildId:    9999,
		ReportDate: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
}

func TestGetWitnessReportsByCaseOrdersNewestFirst(t *testing.T) {
	ctx := setupTestDB(t)

	child := mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-051",
		FirstName:           "Kemi",
		LastName:            "Ola",
		Age:                 10,
		Gender:              models.GenderFemale,
		MissingLocationCity: "Springfield",
	})
	other := mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-052",
		FirstName:           "Seun",
		LastName:            "Ayo",
		Age:                 12,
		Gender:              models.GenderMale,
		MissingLocationCity: "Shelbyville",
	})

	for _, day := range []int{10, 12, 11} {
		if _, err := models.CreateWitnessReport(ctx, &models.NewWitnessReport{
			ChildId:    child.ID,
			ReportDate: time.Date(2026, 8, day, 9, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatalf("CreateWitnessReport: %v", err)
		}
	}
	if _, err := models.CreateWitnessReport(ctx, &models.NewWitnessReport{
		ChildId:    other.ID,
		ReportDate: time.Date(2026, 8, 13, 9, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("CreateWitnessReport: %v", err)
	}

	reports, err := models.GetWitnessReportsByCase(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetWitnessReportsByCase: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports for the case, got %d", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].ReportDate.After(reports[i-1].ReportDate) {
			t.Fatalf("reports not ordered newest first: %v before %v",
				reports[i-1].ReportDate, reports[i].ReportDate)
		}
	}

	all, err := models.GetAllWitnessReports(ctx)
	if err != nil {
		t.Fatalf("GetAllWitnessReports: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 reports in total, got %d", len(all))
	}
}
