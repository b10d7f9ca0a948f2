package patterns

import (
	"context"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

// DefaultZoneThreshold is the minimum total sighting count for a location to
// count as a suspicious zone. The alert driver passes a stricter 3.
const DefaultZoneThreshold = 2

type SuspiciousZone struct {
	LocationCity     string   `json:"location_city"`
	LocationArea     string   `json:"location_area"`
	LocationLandmark *string  `json:"location_landmark"`
	UniqueChildren   int      `json:"unique_children"`
	TotalSightings   int      `json:"total_sightings"`
	CaseNumbers      []string `json:"case_numbers"`
}

// DetectSuspiciousZones groups sightings (joined to their cases) by
// (city, area, landmark) and returns groups with at least threshold total
// sightings, busiest first. Sightings without an area are skipped.
func DetectSuspiciousZones(ctx context.Context, threshold int) ([]*SuspiciousZone, error) {
	if threshold < 1 {
		threshold = DefaultZoneThreshold
	}

	var rows []struct {
		LocationCity     string
		LocationArea     string
		LocationLandmark *string
		UniqueChildren   int
		TotalSightings   int
		CaseNumbers      string
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&models.Sighting{}).
		Select("sightings.location_city, sightings.location_area, sightings.location_landmark, COUNT(DISTINCT sightings.child_id) AS unique_children, COUNT(*) AS total_sightings, GROUP_CONCAT(DISTINCT missing_children.case_number) AS case_numbers").
		Joins("JOIN missing_children ON sightings.child_id = missing_children.id").
		Where("sightings.location_area IS NOT NULL").
		Group("sightings.location_city, sightings.location_area, sightings.location_landmark").
		Having("COUNT(*) >= ?", threshold).
		Order("total_sightings DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}

	results := make([]*SuspiciousZone, 0, len(rows))
	for _, row := range rows {
		results = append(results, &SuspiciousZone{
			LocationCity:     row.LocationCity,
			LocationArea:     row.LocationArea,
			LocationLandmark: row.LocationLandmark,
			UniqueChildren:   row.UniqueChildren,
			TotalSightings:   row.TotalSightings,
			CaseNumbers:      utils.SplitConcat(row.CaseNumbers),
		})
	}
	return results, nil
}
