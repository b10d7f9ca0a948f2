package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

func TestMatchFoundChildMarksCaseMatched(t *testing.T) {
	ctx := setupTestDB(t)

	child := mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-710",
		FirstName:           "Amina",
		LastName:            "Bello",
		Age:                 9,
		Gender:              models.GenderFemale,
		MissingLocationCity: "Springfield",
	})
	found, err := models.CreateFoundChild(ctx, &models.NewFoundChild{
		Age:               utils.NewPtr(9),
		Gender:            utils.NewPtr(models.GenderFemale),
		FoundDate:         time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		FoundLocationCity: "Springfield",
	})
	if err != nil {
		t.Fatalf("CreateFoundChild: %v", err)
	}

	matched, err := models.MatchFoundChild(ctx, found.ID, child.ID, 1)
	if err != nil {
		t.Fatalf("MatchFoundChild: %v", err)
	}
	if matched.MatchedWithChildId == nil || *matched.MatchedWithChildId != child.ID {
		t.Fatalf("expected matched_with_child_id %d, got %v", child.ID, matched.MatchedWithChildId)
	}
	if matched.MatchedAt == nil {
		t.Fatalf("expected matched_at to be set")
	}

	updated, err := models.GetMissingChild(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetMissingChild: %v", err)
	}
	if updated.CaseStatus != models.CaseStatusMatched {
		t.Fatalf("expected case Matched, got %s", updated.CaseStatus)
	}

	history, err := models.GetCaseHistory(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetCaseHistory: %v", err)
	}
	if len(history) == 0 {
		t.Fatalf("expected a history entry for the match")
	}
}

func TestMatchFoundChildUnknownCase(t *testing.T) {
	ctx := setupTestDB(t)

	found, err := models.CreateFoundChild(ctx, &models.NewFoundChild{
		FoundDate:         time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		FoundLocationCity: "Springfield",
	})
	if err != nil {
		t.Fatalf("CreateFoundChild: %v", err)
	}

	_, err = models.MatchFoundChild(ctx, found.ID, 9999, 1)
	if !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
}
