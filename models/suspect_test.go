package models_test

import (
	"testing"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

func TestLinkSuspectToCaseUpserts(t *testing.T) {
	ctx := setupTestDB(t)

	child := mustCreateCase(t, ctx, &models.NewMissingChild{
		CaseNumber:          "CF-2026-010",
		FirstName:           "Amina",
		LastName:            "Bello",
		Age:                 9,
		Gender:              models.GenderFemale,
		MissingLocationCity: "Springfield",
	})
	suspect, err := models.CreateSuspect(ctx, &models.NewSuspect{
		Alias: utils.NewPtr("White Van Man"),
	})
	if err != nil {
		t.Fatalf("CreateSuspect: %v", err)
	}

	link, err := models.LinkSuspectToCase(ctx, suspect.ID, &models.NewSuspectCaseLink{
		ChildId:         child.ID,
		AssociationType: models.AssociationTypeSuspected,
	})
	if err != nil {
		t.Fatalf("LinkSuspectToCase: %v", err)
	}
	if link.AssociationType != models.AssociationTypeSuspected {
		t.Fatalf("expected Suspected association, got %s", link.AssociationType)
	}

	// Linking the same pair again updates the link instead of duplicating it.
	if _, err := models.LinkSuspectToCase(ctx, suspect.ID, &models.NewSuspectCaseLink{
		ChildId:         child.ID,
		AssociationType: models.AssociationTypePrimary,
		Description:     utils.NewPtr("seen near the school twice"),
	}); err != nil {
		t.Fatalf("LinkSuspectToCase repeat: %v", err)
	}

	var count int64
	db := config.GetDB()
	if err := db.Model(&models.SuspectCase{}).Count(&count).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 link row after re-link, got %d", count)
	}

	withLinks, err := models.GetSuspectsByCase(ctx, child.ID)
	if err != nil {
		t.Fatalf("GetSuspectsByCase: %v", err)
	}
	if len(withLinks) != 1 {
		t.Fatalf("expected 1 suspect on case, got %d", len(withLinks))
	}
	if withLinks[0].AssociationType != models.AssociationTypePrimary {
		t.Fatalf("expected association updated to Primary, got %s", withLinks[0].AssociationType)
	}
}

func TestLinkSuspectToCaseUnknownChild(t *testing.T) {
	ctx := setupTestDB(t)

	suspect, err := models.CreateSuspect(ctx, &models.NewSuspect{
		FirstName: utils.NewPtr("John"),
	})
	if err != nil {
		t.Fatalf("CreateSuspect: %v", err)
	}

	if _, err := models.LinkSuspectToCase(ctx, suspect.ID, &models.NewSuspectCaseLink{
		ChildId:         9999,
		AssociationType: models.AssociationTypeSecondary,
	}); err == nil {
		t.Fatalf("expected error linking to unknown case")
	}
}
