package patterns

import (
	"context"
	"errors"
	"sort"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

const (
	// MatchLimit caps the candidate list handed to reviewers.
	MatchLimit = 10

	// matchRadiusKm is the coordinate-proximity cutoff.
	matchRadiusKm = 50

	// matchWindowDays is how far back from the found date a case may have
	// gone missing and still be a candidate.
	matchWindowDays = 30
)

type PotentialMatch struct {
	Child         *models.MissingChild `json:"child"`
	AgeScore      int                  `json:"age_score"`
	LocationScore int                  `json:"location_score"`
}

func (m *PotentialMatch) TotalScore() int {
	return m.AgeScore + m.LocationScore
}

// FindPotentialMatches ranks open missing-child cases against a found-child
// report. Filters only restrict on fields the report actually has, so a
// sparse report degrades to the status and time-window restrictions instead
// of excluding everything. A missing report id yields an empty list, not an
// error. Returns at most MatchLimit candidates, best combined score first.
func FindPotentialMatches(ctx context.Context, foundId int) ([]*PotentialMatch, error) {
	found, err := models.GetFoundChild(ctx, foundId)
	if err != nil {
		if errors.Is(err, utils.ErrorRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("case_status = ?", models.CaseStatusOpen)

	// Age within ±2 years when known.
	if found.Age != nil {
		lo := *found.Age - 2
		if lo < 0 {
			lo = 0
		}
		dbCtx = dbCtx.Where("age BETWEEN ? AND ?", lo, *found.Age+2)
	}

	// Exact gender when known.
	if found.Gender != nil {
		dbCtx = dbCtx.Where("gender = ?", *found.Gender)
	}

	hasCoords := found.FoundLocationLatitude != nil && found.FoundLocationLongitude != nil
	if !hasCoords && found.FoundLocationCity != "" {
		// Textual fallback: substring match on city. Looser than the exact
		// comparison locationScore applies later.
		dbCtx = dbCtx.Where("missing_location_city LIKE ?", "%"+found.FoundLocationCity+"%")
	}

	windowStart := found.FoundDate.AddDate(0, 0, -matchWindowDays)
	dbCtx = dbCtx.Where("missing_date BETWEEN ? AND ?", windowStart, found.FoundDate)

	var candidates []*models.MissingChild
	if err := dbCtx.Find(&candidates).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	// Coordinate proximity is applied in Go; cases without their own
	// coordinates are excluded by this path.
	if hasCoords {
		within := candidates[:0]
		for _, child := range candidates {
			if child.MissingLocationLatitude == nil || child.MissingLocationLongitude == nil {
				continue
			}
			d := utils.DistanceKm(
				*found.FoundLocationLatitude, *found.FoundLocationLongitude,
				*child.MissingLocationLatitude, *child.MissingLocationLongitude,
			)
			if d <= matchRadiusKm {
				within = append(within, child)
			}
		}
		candidates = within
	}

	foundAge := utils.DereferencePtr(found.Age, 0)
	matches := make([]*PotentialMatch, 0, len(candidates))
	for _, child := range candidates {
		matches = append(matches, &PotentialMatch{
			Child:         child,
			AgeScore:      ageScore(child.Age, foundAge),
			LocationScore: locationScore(child.MissingLocationCity, found.FoundLocationCity),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].TotalScore() != matches[j].TotalScore() {
			return matches[i].TotalScore() > matches[j].TotalScore()
		}
		return matches[i].Child.MissingDate.After(matches[j].Child.MissingDate)
	})
	if len(matches) > MatchLimit {
		matches = matches[:MatchLimit]
	}
	return matches, nil
}

func ageScore(caseAge, foundAge int) int {
	diff := caseAge - foundAge
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 10
	case 1:
		return 8
	case 2:
		return 6
	default:
		return 4
	}
}

// locationScore compares city names exactly, case-sensitive. An exact-city
// case outranks one that only passed the substring filter.
func locationScore(caseCity, foundCity string) int {
	if caseCity == foundCity {
		return 10
	}
	return 5
}
