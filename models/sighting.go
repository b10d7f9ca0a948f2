package models

import (
	"context"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
)

type Sighting struct {
	ID                int       `gorm:"primary_key" json:"id"`
	ChildId           int       `gorm:"not null;index" json:"child_id" binding:"required"`
	SightingDateTime  time.Time `gorm:"not null;index" json:"sighting_date_time" binding:"required"`
	LocationCity      string    `gorm:"size:100;not null" json:"location_city" binding:"required"`
	LocationArea      *string   `gorm:"size:100" json:"location_area"`
	LocationLandmark  *string   `gorm:"size:255" json:"location_landmark"`
	LocationLatitude  *float64  `json:"location_latitude"`
	LocationLongitude *float64  `json:"location_longitude"`
	ReportedByWitness *string   `gorm:"size:150" json:"reported_by_witness"`
	WitnessContact    *string   `gorm:"size:50" json:"witness_contact"`
	Description       *string   `gorm:"type:text" json:"description"`
	ReliabilityScore  int       `gorm:"not null;default:5" json:"reliability_score" binding:"omitempty,min=1,max=10"`
	ReportedBy        int       `json:"reported_by"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type NewSighting struct {
	ChildId           int       `json:"child_id" binding:"required"`
	SightingDateTime  time.Time `json:"sighting_date_time" binding:"required"`
	LocationCity      string    `json:"location_city" binding:"required"`
	LocationArea      *string   `json:"location_area"`
	LocationLandmark  *string   `json:"location_landmark"`
	LocationLatitude  *float64  `json:"location_latitude"`
	LocationLongitude *float64  `json:"location_longitude"`
	ReportedByWitness *string   `json:"reported_by_witness"`
	WitnessContact    *string   `json:"witness_contact"`
	Description       *string   `json:"description"`
	ReliabilityScore  *int      `json:"reliability_score" binding:"omitempty,min=1,max=10"`
}

func CreateSighting(ctx context.Context, input *NewSighting) (*Sighting, error) {
	if err := utils.ValidateResourceId[MissingChild](ctx, input.ChildId); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	db := config.GetDB()
	sighting := Sighting{
		ChildId:           input.ChildId,
		SightingDateTime:  input.SightingDateTime,
		LocationCity:      input.LocationCity,
		LocationArea:      input.LocationArea,
		LocationLandmark:  input.LocationLandmark,
		LocationLatitude:  input.LocationLatitude,
		LocationLongitude: input.LocationLongitude,
		ReportedByWitness: input.ReportedByWitness,
		WitnessContact:    input.WitnessContact,
		Description:       input.Description,
		ReliabilityScore:  utils.DereferencePtr(input.ReliabilityScore, 5),
		ReportedBy:        userId,
	}
	if err := db.WithContext(ctx).Create(&sighting).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return &sighting, nil
}

func GetSightingsByChild(ctx context.Context, childId int) ([]*Sighting, error) {
	db := config.GetDB()
	var sightings []*Sighting
	if err := db.WithContext(ctx).Where("child_id = ?", childId).
		Order("sighting_date_time DESC").Find(&sightings).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return sightings, nil
}

func GetAllSightings(ctx context.Context) ([]*Sighting, error) {
	db := config.GetDB()
	var sightings []*Sighting
	if err := db.WithContext(ctx).Order("sighting_date_time DESC").Find(&sightings).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return sightings, nil
}

func SearchSightingsByLocation(ctx context.Context, city string, area *string, landmark *string) ([]*Sighting, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("location_city LIKE ?", "%"+city+"%")
	if area != nil && *area != "" {
		dbCtx = dbCtx.Where("location_area LIKE ?", "%"+*area+"%")
	}
	if landmark != nil && *landmark != "" {
		dbCtx = dbCtx.Where("location_landmark LIKE ?", "%"+*landmark+"%")
	}

	var sightings []*Sighting
	if err := dbCtx.Order("sighting_date_time DESC").Find(&sightings).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return sightings, nil
}
