package patterns

import (
	"context"
	"sort"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

type AreaCluster struct {
	MissingLocationArea string    `json:"missing_location_area"`
	MissingLocationCity string    `json:"missing_location_city"`
	CaseCount           int       `json:"case_count"`
	CaseNumbers         []string  `json:"case_numbers"`
	FirstCase           time.Time `json:"first_case"`
	LastCase            time.Time `json:"last_case"`
}

type SchoolCluster struct {
	SchoolName          string   `json:"school_name"`
	MissingLocationCity string   `json:"missing_location_city"`
	CaseCount           int      `json:"case_count"`
	CaseNumbers         []string `json:"case_numbers"`
}

type AreaClustering struct {
	ByArea   []*AreaCluster   `json:"by_area"`
	BySchool []*SchoolCluster `json:"by_school"`
}

// DetectAreaClustering runs two independent aggregations over missing cases:
// by (area, city) and by (school, city), each keeping groups with more than
// one case, largest first. The area variant also reports the first and last
// missing date in each group.
func DetectAreaClustering(ctx context.Context) (*AreaClustering, error) {
	var rows []struct {
		MissingLocationArea *string
		MissingLocationCity string
		SchoolName          *string
		CaseNumber          string
		MissingDate         time.Time
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&models.MissingChild{}).
		Select("missing_location_area, missing_location_city, school_name, case_number, missing_date").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}

	type key struct{ a, b string }
	areas := map[key]*AreaCluster{}
	schools := map[key]*SchoolCluster{}

	for _, row := range rows {
		if row.MissingLocationArea != nil {
			k := key{*row.MissingLocationArea, row.MissingLocationCity}
			group, ok := areas[k]
			if !ok {
				group = &AreaCluster{
					MissingLocationArea: k.a,
					MissingLocationCity: k.b,
					FirstCase:           row.MissingDate,
					LastCase:            row.MissingDate,
				}
				areas[k] = group
			}
			group.CaseCount++
			group.CaseNumbers = append(group.CaseNumbers, row.CaseNumber)
			if row.MissingDate.Before(group.FirstCase) {
				group.FirstCase = row.MissingDate
			}
			if row.MissingDate.After(group.LastCase) {
				group.LastCase = row.MissingDate
			}
		}
		if row.SchoolName != nil {
			k := key{*row.SchoolName, row.MissingLocationCity}
			group, ok := schools[k]
			if !ok {
				group = &SchoolCluster{
					SchoolName:          k.a,
					MissingLocationCity: k.b,
				}
				schools[k] = group
			}
			group.CaseCount++
			group.CaseNumbers = append(group.CaseNumbers, row.CaseNumber)
		}
	}

	clustering := AreaClustering{}
	for _, group := range areas {
		if group.CaseCount > 1 {
			clustering.ByArea = append(clustering.ByArea, group)
		}
	}
	for _, group := range schools {
		if group.CaseCount > 1 {
			clustering.BySchool = append(clustering.BySchool, group)
		}
	}
	sort.SliceStable(clustering.ByArea, func(i, j int) bool {
		return clustering.ByArea[i].CaseCount > clustering.ByArea[j].CaseCount
	})
	sort.SliceStable(clustering.BySchool, func(i, j int) bool {
		return clustering.BySchool[i].CaseCount > clustering.BySchool[j].CaseCount
	})
	return &clustering, nil
}
