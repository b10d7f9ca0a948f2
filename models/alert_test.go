package models_test

import (
	"testing"
	"time"

	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

func TestRaiseAlertDeduplicatesPerDay(t *testing.T) {
	ctx := setupTestDB(t)
	day := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)

	input := &models.NewAlert{
		AlertType:       models.AlertTypeMultipleMissingSameLocation,
		Title:           "Multiple Children Missing from Same Location",
		Message:         "3 children have gone missing from: Springfield, Downtown",
		Severity:        models.AlertSeverityCritical,
		RelatedLocation: utils.NewPtr("Springfield, Downtown, "),
	}

	alert, created, err := models.RaiseAlert(ctx, input, day)
	if err != nil {
		t.Fatalf("RaiseAlert: %v", err)
	}
	if !created || alert == nil {
		t.Fatalf("expected first raise to create an alert")
	}

	// Same type, reference and day: suppressed, no error.
	repeat, created, err := models.RaiseAlert(ctx, input, day.Add(6*time.Hour))
	if err != nil {
		t.Fatalf("RaiseAlert repeat: %v", err)
	}
	if created || repeat != nil {
		t.Fatalf("expected same-day repeat to be suppressed")
	}

	alerts, err := models.GetAlerts(ctx, false)
	if err != nil {
		t.Fatalf("GetAlerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert after same-day repeat, got %d", len(alerts))
	}

	// Next calendar day: a fresh alert is allowed.
	_, created, err = models.RaiseAlert(ctx, input, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("RaiseAlert next day: %v", err)
	}
	if !created {
		t.Fatalf("expected next-day raise to create an alert")
	}
}

func TestRaiseAlertDifferentReferencesSameDay(t *testing.T) {
	ctx := setupTestDB(t)
	day := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	for _, location := range []string{"Springfield, Downtown, ", "Shelbyville, Riverside, "} {
		_, created, err := models.RaiseAlert(ctx, &models.NewAlert{
			AlertType:       models.AlertTypeMultipleMissingSameLocation,
			Title:           "Multiple Children Missing from Same Location",
			Message:         "cluster at " + location,
			Severity:        models.AlertSeverityHigh,
			RelatedLocation: utils.NewPtr(location),
		}, day)
		if err != nil {
			t.Fatalf("RaiseAlert(%s): %v", location, err)
		}
		if !created {
			t.Fatalf("expected alert for distinct location %s", location)
		}
	}

	// Same day, same reference id but a different alert type is also distinct.
	suspectId := 7
	_, created, err := models.RaiseAlert(ctx, &models.NewAlert{
		AlertType:        models.AlertTypeRepeatSuspect,
		Title:            "Suspect Linked to Multiple Cases",
		Message:          "Suspect linked to 2 cases",
		Severity:         models.AlertSeverityHigh,
		RelatedSuspectId: &suspectId,
	}, day)
	if err != nil {
		t.Fatalf("RaiseAlert suspect: %v", err)
	}
	if !created {
		t.Fatalf("expected suspect alert to be created")
	}
}

func TestMarkAlertRead(t *testing.T) {
	ctx := setupTestDB(t)
	day := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	alert, _, err := models.RaiseAlert(ctx, &models.NewAlert{
		AlertType:       models.AlertTypeSuspiciousZone,
		Title:           "Suspicious Activity Zone Detected",
		Message:         "Multiple sightings reported in Springfield, Riverside",
		Severity:        models.AlertSeverityHigh,
		RelatedLocation: utils.NewPtr("Springfield, Riverside"),
	}, day)
	if err != nil {
		t.Fatalf("RaiseAlert: %v", err)
	}

	unread, err := models.GetAlerts(ctx, true)
	if err != nil {
		t.Fatalf("GetAlerts unread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread alert, got %d", len(unread))
	}

	if _, err := models.MarkAlertRead(ctx, alert.ID); err != nil {
		t.Fatalf("MarkAlertRead: %v", err)
	}

	unread, err = models.GetAlerts(ctx, true)
	if err != nil {
		t.Fatalf("GetAlerts unread after read: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("expected no unread alerts, got %d", len(unread))
	}
}
