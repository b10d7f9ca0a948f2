package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

// Seeds a local database with enough data to light up the patterns page:
// a location cluster, a repeat suspect, a sighting zone and a found report
// that scores against an open case. Dev use only.
func main() {
	logger := config.GetLogger()

	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	ctx := utils.SetUserIdInContext(context.Background(), 1)
	now := time.Now().UTC()

	area := "Downtown"
	landmark := "Central Market"

	children := []models.NewMissingChild{
		{
			CaseNumber:          "CF-2026-001",
			FirstName:           "Amina",
			LastName:            "Bello",
			Age:                 9,
			Gender:              models.GenderFemale,
			MissingDate:         now.AddDate(0, 0, -12),
			MissingLocationCity: "Springfield",
			MissingLocationArea: &area,
			SchoolName:          utils.NewPtr("Springfield Primary"),
		},
		{
			CaseNumber:              "CF-2026-002",
			FirstName:               "Chidi",
			LastName:                "Okoro",
			Age:                     11,
			Gender:                  models.GenderMale,
			MissingDate:             now.AddDate(0, 0, -8),
			MissingLocationCity:     "Springfield",
			MissingLocationArea:     &area,
			MissingLocationLandmark: &landmark,
		},
		{
			CaseNumber:               "CF-2026-003",
			FirstName:                "Ngozi",
			LastName:                 "Eze",
			Age:                      7,
			Gender:                   models.GenderFemale,
			MissingDate:              now.AddDate(0, 0, -3),
			MissingLocationCity:      "Springfield",
			MissingLocationArea:      &area,
			MissingLocationLatitude:  utils.NewPtr(6.5244),
			MissingLocationLongitude: utils.NewPtr(3.3792),
			SchoolName:               utils.NewPtr("Springfield Primary"),
		},
	}

	ids := make([]int, 0, len(children))
	for i := range children {
		child, err := models.CreateMissingChild(ctx, &children[i])
		if err != nil {
			config.LogError(logger, "main.go", "main", "CreateMissingChild", children[i].CaseNumber, err)
			continue
		}
		ids = append(ids, child.ID)
	}

	if len(ids) >= 2 {
		suspect, err := models.CreateSuspect(ctx, &models.NewSuspect{
			FirstName: utils.NewPtr("Unknown"),
			Alias:     utils.NewPtr("White Van Man"),
		})
		if err != nil {
			config.LogError(logger, "main.go", "main", "CreateSuspect", nil, err)
		} else {
			for _, childId := range ids[:2] {
				if _, err := models.LinkSuspectToCase(ctx, suspect.ID, &models.NewSuspectCaseLink{
					ChildId:         childId,
					AssociationType: models.AssociationTypeSuspected,
				}); err != nil {
					config.LogError(logger, "main.go", "main", "LinkSuspectToCase", childId, err)
				}
			}
		}
	}

	for _, childId := range ids {
		if _, err := models.CreateSighting(ctx, &models.NewSighting{
			ChildId:          childId,
			SightingDateTime: now.AddDate(0, 0, -1),
			LocationCity:     "Springfield",
			LocationArea:     utils.NewPtr("Riverside"),
		}); err != nil {
			config.LogError(logger, "main.go", "main", "CreateSighting", childId, err)
		}
	}

	if _, err := models.CreateFoundChild(ctx, &models.NewFoundChild{
		Age:                    utils.NewPtr(9),
		Gender:                 utils.NewPtr(models.GenderFemale),
		FoundDate:              now,
		FoundLocationCity:      "Springfield",
		FoundLocationLatitude:  utils.NewPtr(6.53),
		FoundLocationLongitude: utils.NewPtr(3.38),
	}); err != nil {
		config.LogError(logger, "main.go", "main", "CreateFoundChild", nil, err)
	}

	logger.WithFields(logrus.Fields{"children": len(ids)}).Info("dev seed finished")
}

