package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/models/patterns"
	"github.com/childfind-ng/childfind_backend/utils"
	"github.com/sirupsen/logrus"
)

const (
	alertLocationThreshold = 2
	alertZoneThreshold     = 3
)

// SeverityForLocationCluster keeps the full three-tier ladder even though the
// detection threshold of 2 currently makes Medium unreachable; lowering the
// threshold later must not yield a zero severity.
func SeverityForLocationCluster(caseCount int) models.AlertSeverity {
	switch {
	case caseCount >= 3:
		return models.AlertSeverityCritical
	case caseCount >= 2:
		return models.AlertSeverityHigh
	default:
		return models.AlertSeverityMedium
	}
}

func SeverityForRepeatSuspect(caseCount int) models.AlertSeverity {
	if caseCount >= 3 {
		return models.AlertSeverityCritical
	}
	return models.AlertSeverityHigh
}

func SeverityForSuspiciousZone(totalSightings int) models.AlertSeverity {
	switch {
	case totalSightings >= 5:
		return models.AlertSeverityCritical
	case totalSightings >= 3:
		return models.AlertSeverityHigh
	default:
		return models.AlertSeverityMedium
	}
}

// AlertRunStats summarises one GenerateAlerts invocation.
type AlertRunStats struct {
	Raised     int `json:"raised"`
	Suppressed int `json:"suppressed"`
	Failed     int `json:"failed"`
}

// GenerateAlerts runs the alert-relevant detectors and raises a deduped alert
// for each finding. Safe to re-invoke any number of times within the same
// day: the per-day dedup in RaiseAlert suppresses repeats, so no cursor or
// watermark is needed. Detectors and individual alert writes are independent;
// a failure in one is logged and counted without stopping the rest. The
// returned error joins the detector failures, if any.
func GenerateAlerts(ctx context.Context, day time.Time) (*AlertRunStats, error) {
	logger := config.GetLogger()
	stats := AlertRunStats{}
	var errs []error

	// Best-effort lock so overlapping scheduled runs don't race the
	// check-then-insert; the unique index on alerts is the real guarantee.
	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, "lock:generate-alerts", 30*time.Second, nil)
		if err == nil {
			defer func() {
				if releaseErr := lock.Release(ctx); releaseErr != nil {
					logger.WithFields(logrus.Fields{
						"field": "GenerateAlerts",
					}).Warn("failed to release redis lock: " + releaseErr.Error())
				}
			}()
		} else if err != redislock.ErrNotObtained {
			logger.WithFields(logrus.Fields{
				"field": "GenerateAlerts",
			}).Warn("error obtaining redis lock; proceeding without it: " + err.Error())
		}
	}

	// 1. Multiple children missing from the same location.
	locations, err := patterns.DetectHighRiskLocations(ctx, alertLocationThreshold)
	if err != nil {
		config.LogError(logger, "alertWorkflow.go", "GenerateAlerts", "DetectHighRiskLocations", nil, err)
		errs = append(errs, err)
	}
	for _, loc := range locations {
		locationStr := fmt.Sprintf("%s, %s, %s",
			loc.MissingLocationCity, loc.MissingLocationArea,
			utils.DereferencePtr(loc.MissingLocationLandmark, ""))
		raiseAndCount(ctx, logger, &stats, &models.NewAlert{
			AlertType: models.AlertTypeMultipleMissingSameLocation,
			Title:     "Multiple Children Missing from Same Location",
			Message: fmt.Sprintf("%d children have gone missing from: %s. Case numbers: %s",
				loc.CaseCount, locationStr, strings.Join(loc.CaseNumbers, ", ")),
			Severity:        SeverityForLocationCluster(loc.CaseCount),
			RelatedLocation: &locationStr,
		}, day)
	}

	// 2. Repeat suspects.
	suspects, err := patterns.DetectRepeatSuspects(ctx)
	if err != nil {
		config.LogError(logger, "alertWorkflow.go", "GenerateAlerts", "DetectRepeatSuspects", nil, err)
		errs = append(errs, err)
	}
	for _, suspect := range suspects {
		name := strings.TrimSpace(utils.DereferencePtr(suspect.FirstName, "") + " " + utils.DereferencePtr(suspect.LastName, ""))
		if name == "" {
			name = utils.DereferencePtr(suspect.Alias, "Unknown")
		}
		suspectId := suspect.SuspectId
		raiseAndCount(ctx, logger, &stats, &models.NewAlert{
			AlertType: models.AlertTypeRepeatSuspect,
			Title:     "Suspect Linked to Multiple Cases",
			Message: fmt.Sprintf("Suspect '%s' is now linked to %d cases: %s",
				name, suspect.CaseCount, strings.Join(suspect.CaseNumbers, ", ")),
			Severity:         SeverityForRepeatSuspect(suspect.CaseCount),
			RelatedSuspectId: &suspectId,
		}, day)
	}

	// 3. Suspicious activity zones.
	zones, err := patterns.DetectSuspiciousZones(ctx, alertZoneThreshold)
	if err != nil {
		config.LogError(logger, "alertWorkflow.go", "GenerateAlerts", "DetectSuspiciousZones", nil, err)
		errs = append(errs, err)
	}
	for _, zone := range zones {
		locationStr := fmt.Sprintf("%s, %s", zone.LocationCity, zone.LocationArea)
		raiseAndCount(ctx, logger, &stats, &models.NewAlert{
			AlertType: models.AlertTypeSuspiciousZone,
			Title:     "Suspicious Activity Zone Detected",
			Message: fmt.Sprintf("Multiple sightings (%d) reported in %s involving %d different children. Case numbers: %s",
				zone.TotalSightings, locationStr, zone.UniqueChildren, strings.Join(zone.CaseNumbers, ", ")),
			Severity:        SeverityForSuspiciousZone(zone.TotalSightings),
			RelatedLocation: &locationStr,
		}, day)
	}

	return &stats, errors.Join(errs...)
}

func raiseAndCount(ctx context.Context, logger *logrus.Logger, stats *AlertRunStats, input *models.NewAlert, day time.Time) {
	_, created, err := models.RaiseAlert(ctx, input, day)
	switch {
	case err != nil:
		config.LogError(logger, "alertWorkflow.go", "GenerateAlerts", "RaiseAlert:"+string(input.AlertType), input.Title, err)
		stats.Failed++
	case created:
		stats.Raised++
	default:
		stats.Suppressed++
	}
}

// RaiseFoundMatchAlert records that a new found-child report has at least one
// candidate case, referencing the best-scoring one. Fixed Medium severity.
func RaiseFoundMatchAlert(ctx context.Context, foundId int, best *patterns.PotentialMatch, day time.Time) error {
	childId := best.Child.ID
	_, _, err := models.RaiseAlert(ctx, &models.NewAlert{
		AlertType: models.AlertTypeFoundMatch,
		Title:     "Potential Match Found",
		Message: fmt.Sprintf("Found child report #%d may match missing child case %s based on age, gender, and location proximity.",
			foundId, best.Child.CaseNumber),
		Severity:       models.AlertSeverityMedium,
		RelatedChildId: &childId,
	}, day)
	return err
}
