package patterns

import (
	"context"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

// DefaultHotspotThreshold is the minimum case count for a location group to
// count as a hotspot.
const DefaultHotspotThreshold = 2

type HighRiskLocation struct {
	MissingLocationCity     string   `json:"missing_location_city"`
	MissingLocationArea     string   `json:"missing_location_area"`
	MissingLocationLandmark *string  `json:"missing_location_landmark"`
	CaseCount               int      `json:"case_count"`
	CaseNumbers             []string `json:"case_numbers"`
}

// DetectHighRiskLocations groups missing cases by (city, area, landmark) and
// returns groups with at least threshold cases, largest first. Groups without
// an area are skipped. Thresholds below 1 are clamped to the default so a
// misconfigured scheduled scan still produces sane results.
func DetectHighRiskLocations(ctx context.Context, threshold int) ([]*HighRiskLocation, error) {
	if threshold < 1 {
		threshold = DefaultHotspotThreshold
	}

	var rows []struct {
		MissingLocationCity     string
		MissingLocationArea     string
		MissingLocationLandmark *string
		CaseCount               int
		CaseNumbers             string
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&models.MissingChild{}).
		Select("missing_location_city, missing_location_area, missing_location_landmark, COUNT(*) AS case_count, GROUP_CONCAT(case_number) AS case_numbers").
		Where("missing_location_area IS NOT NULL").
		Group("missing_location_city, missing_location_area, missing_location_landmark").
		Having("COUNT(*) >= ?", threshold).
		Order("case_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}

	results := make([]*HighRiskLocation, 0, len(rows))
	for _, row := range rows {
		results = append(results, &HighRiskLocation{
			MissingLocationCity:     row.MissingLocationCity,
			MissingLocationArea:     row.MissingLocationArea,
			MissingLocationLandmark: row.MissingLocationLandmark,
			CaseCount:               row.CaseCount,
			CaseNumbers:             utils.SplitConcat(row.CaseNumbers),
		})
	}
	return results, nil
}
