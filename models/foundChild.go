package models

import (
	"context"
	"fmt"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
)

type FoundChild struct {
	ID                     int        `gorm:"primary_key" json:"id"`
	FirstName              *string    `gorm:"size:100" json:"first_name"`
	LastName               *string    `gorm:"size:100" json:"last_name"`
	Age                    *int       `json:"age"`
	Gender                 *Gender    `gorm:"size:10" json:"gender"`
	FoundDate              time.Time  `gorm:"not null;index" json:"found_date" binding:"required"`
	FoundLocationCity      string     `gorm:"size:100;not null" json:"found_location_city" binding:"required"`
	FoundLocationArea      *string    `gorm:"size:100" json:"found_location_area"`
	FoundLocationLandmark  *string    `gorm:"size:255" json:"found_location_landmark"`
	FoundLocationLatitude  *float64   `json:"found_location_latitude"`
	FoundLocationLongitude *float64   `json:"found_location_longitude"`
	PhysicalDescription    *string    `gorm:"type:text" json:"physical_description"`
	ClothingDescription    *string    `gorm:"type:text" json:"clothing_description"`
	ConditionDescription   *string    `gorm:"type:text" json:"condition_description"`
	MatchedWithChildId     *int       `gorm:"index" json:"matched_with_child_id"`
	MatchedBy              *int       `json:"matched_by"`
	MatchedAt              *time.Time `json:"matched_at"`
	ReportedBy             int        `json:"reported_by"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewFoundChild struct {
	FirstName              *string   `json:"first_name"`
	LastName               *string   `json:"last_name"`
	Age                    *int      `json:"age"`
	Gender                 *Gender   `json:"gender"`
	FoundDate              time.Time `json:"found_date" binding:"required"`
	FoundLocationCity      string    `json:"found_location_city" binding:"required"`
	FoundLocationArea      *string   `json:"found_location_area"`
	FoundLocationLandmark  *string   `json:"found_location_landmark"`
	FoundLocationLatitude  *float64  `json:"found_location_latitude"`
	FoundLocationLongitude *float64  `json:"found_location_longitude"`
	PhysicalDescription    *string   `json:"physical_description"`
	ClothingDescription    *string   `json:"clothing_description"`
	ConditionDescription   *string   `json:"condition_description"`
}

func CreateFoundChild(ctx context.Context, input *NewFoundChild) (*FoundChild, error) {
	userId, _ := utils.GetUserIdFromContext(ctx)

	db := config.GetDB()
	found := FoundChild{
		FirstName:              input.FirstName,
		LastName:               input.LastName,
		Age:                    input.Age,
		Gender:                 input.Gender,
		FoundDate:              input.FoundDate,
		FoundLocationCity:      input.FoundLocationCity,
		FoundLocationArea:      input.FoundLocationArea,
		FoundLocationLandmark:  input.FoundLocationLandmark,
		FoundLocationLatitude:  input.FoundLocationLatitude,
		FoundLocationLongitude: input.FoundLocationLongitude,
		PhysicalDescription:    input.PhysicalDescription,
		ClothingDescription:    input.ClothingDescription,
		ConditionDescription:   input.ConditionDescription,
		ReportedBy:             userId,
	}
	if err := db.WithContext(ctx).Create(&found).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	// Dashboard counters changed.
	_ = config.RemoveRedisKey(statisticsCacheKey)
	return &found, nil
}

func GetFoundChild(ctx context.Context, id int) (*FoundChild, error) {
	return utils.FetchSingleModel[FoundChild](ctx, id)
}

func GetAllFoundChildren(ctx context.Context) ([]*FoundChild, error) {
	db := config.GetDB()
	var found []*FoundChild
	if err := db.WithContext(ctx).Order("found_date DESC").Find(&found).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return found, nil
}

// MatchFoundChild confirms a human-reviewed match: links the found report to
// the case and transitions the case to Matched, recording history. Both sides
// must exist.
func MatchFoundChild(ctx context.Context, foundId int, childId int, matchedBy int) (*FoundChild, error) {
	found, err := utils.FetchSingleModel[FoundChild](ctx, foundId)
	if err != nil {
		return nil, err
	}
	if _, err := utils.FetchSingleModel[MissingChild](ctx, childId); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(found).Updates(map[string]interface{}{
		"MatchedWithChildId": childId,
		"MatchedBy":          matchedBy,
		"MatchedAt":          now,
	}).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	notes := fmt.Sprintf("Matched with found child report #%d", foundId)
	if err := UpdateCaseStatus(ctx, childId, CaseStatusMatched, notes, matchedBy); err != nil {
		return nil, err
	}
	return found, nil
}
