package models

import (
	"context"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
)

// WitnessReport is a statement taken from a member of the public about an
// open case. Unlike a Sighting it records who the witness is, and the
// sighting details inside it are optional: a witness may only have
// background information.
type WitnessReport struct {
	ID                        int        `gorm:"primary_key" json:"id"`
	ChildId                   int        `gorm:"not null;index" json:"child_id" binding:"required"`
	WitnessName               *string    `gorm:"size:150" json:"witness_name"`
	WitnessContact            *string    `gorm:"size:50" json:"witness_contact"`
	WitnessAddress            *string    `gorm:"size:255" json:"witness_address"`
	ReportDate                time.Time  `gorm:"not null;index" json:"report_date" binding:"required"`
	SightingLocationCity      *string    `gorm:"size:100" json:"sighting_location_city"`
	SightingLocationArea      *string    `gorm:"size:100" json:"sighting_location_area"`
	SightingLocationLandmark  *string    `gorm:"size:255" json:"sighting_location_landmark"`
	SightingLocationLatitude  *float64   `json:"sighting_location_latitude"`
	SightingLocationLongitude *float64   `json:"sighting_location_longitude"`
	SightingDateTime          *time.Time `json:"sighting_date_time"`
	Description               *string    `gorm:"type:text" json:"description"`
	CredibilityScore          int        `gorm:"not null;default:5" json:"credibility_score" binding:"omitempty,min=1,max=10"`
	ReportedBy                int        `json:"reported_by"`
	CreatedAt                 time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

type NewWitnessReport struct {
	ChildId                   int        `json:"child_id" binding:"required"`
	WitnessName               *string    `json:"witness_name"`
	WitnessContact            *string    `json:"witness_contact"`
	WitnessAddress            *string    `json:"witness_address"`
	ReportDate                time.Time  `json:"report_date" binding:"required"`
	SightingLocationCity      *string    `json:"sighting_location_city"`
	SightingLocationArea      *string    `json:"sighting_location_area"`
	SightingLocationLandmark  *string    `json:"sighting_location_landmark"`
	SightingLocationLatitude  *float64   `json:"sighting_location_latitude"`
	SightingLocationLongitude *float64   `json:"sighting_location_longitude"`
	SightingDateTime          *time.Time `json:"sighting_date_time"`
	Description               *string    `json:"description"`
	CredibilityScore          *int       `json:"credibility_score" binding:"omitempty,min=1,max=10"`
}

func CreateWitnessReport(ctx context.Context, input *NewWitnessReport) (*WitnessReport, error) {
	if err := utils.ValidateResourceId[MissingChild](ctx, input.ChildId); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	db := config.GetDB()
	report := WitnessReport{
		ChildId:                   input.ChildId,
		WitnessName:               input.WitnessName,
		WitnessContact:            input.WitnessContact,
		WitnessAddress:            input.WitnessAddress,
		ReportDate:                input.ReportDate,
		SightingLocationCity:      input.SightingLocationCity,
		SightingLocationArea:      input.SightingLocationArea,
		SightingLocationLandmark:  input.SightingLocationLandmark,
		SightingLocationLatitude:  input.SightingLocationLatitude,
		SightingLocationLongitude: input.SightingLocationLongitude,
		SightingDateTime:          input.SightingDateTime,
		Description:               input.Description,
		CredibilityScore:          utils.DereferencePtr(input.CredibilityScore, 5),
		ReportedBy:                userId,
	}
	if err := db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return &report, nil
}

func GetWitnessReport(ctx context.Context, id int) (*WitnessReport, error) {
	return utils.FetchSingleModel[WitnessReport](ctx, id)
}

func GetWitnessReportsByCase(ctx context.Context, childId int) ([]*WitnessReport, error) {
	db := config.GetDB()
	var reports []*WitnessReport
	if err := db.WithContext(ctx).Where("child_id = ?", childId).
		Order("report_date DESC").Find(&reports).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return reports, nil
}

func GetAllWitnessReports(ctx context.Context) ([]*WitnessReport, error) {
	db := config.GetDB()
	var reports []*WitnessReport
	if err := db.WithContext(ctx).Order("report_date DESC").Find(&reports).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return reports, nil
}
