package patterns

import (
	"context"
	"sort"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

type RepeatSuspect struct {
	SuspectId    int         `json:"suspect_id"`
	FirstName    *string     `json:"first_name"`
	LastName     *string     `json:"last_name"`
	Alias        *string     `json:"alias"`
	CaseCount    int         `json:"case_count"`
	CaseNumbers  []string    `json:"case_numbers"`
	MissingDates []time.Time `json:"missing_dates"`
}

// DetectRepeatSuspects joins suspects to their linked cases and returns the
// suspects linked to more than one case, most-linked first. The per-suspect
// grouping runs in Go so the missing dates stay typed instead of riding a
// string-concatenated column.
func DetectRepeatSuspects(ctx context.Context) ([]*RepeatSuspect, error) {
	var rows []struct {
		SuspectId   int
		FirstName   *string
		LastName    *string
		Alias       *string
		CaseNumber  string
		MissingDate time.Time
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&models.Suspect{}).
		Select("suspects.id AS suspect_id, suspects.first_name, suspects.last_name, suspects.alias, missing_children.case_number, missing_children.missing_date").
		Joins("JOIN suspect_cases ON suspects.id = suspect_cases.suspect_id").
		Joins("JOIN missing_children ON suspect_cases.child_id = missing_children.id").
		Order("suspects.id").
		Scan(&rows).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}

	bySuspect := map[int]*RepeatSuspect{}
	var order []int
	for _, row := range rows {
		group, ok := bySuspect[row.SuspectId]
		if !ok {
			group = &RepeatSuspect{
				SuspectId: row.SuspectId,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Alias:     row.Alias,
			}
			bySuspect[row.SuspectId] = group
			order = append(order, row.SuspectId)
		}
		group.CaseCount++
		group.CaseNumbers = append(group.CaseNumbers, row.CaseNumber)
		group.MissingDates = append(group.MissingDates, row.MissingDate)
	}

	var results []*RepeatSuspect
	for _, id := range order {
		if group := bySuspect[id]; group.CaseCount > 1 {
			results = append(results, group)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CaseCount > results[j].CaseCount
	})
	return results, nil
}
