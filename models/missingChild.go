package models

import (
	"context"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
)

type MissingChild struct {
	ID                       int        `gorm:"primary_key" json:"id"`
	CaseNumber               string     `gorm:"size:50;not null;uniqueIndex" json:"case_number" binding:"required"`
	FirstName                string     `gorm:"size:100;not null" json:"first_name" binding:"required"`
	LastName                 string     `gorm:"size:100;not null" json:"last_name" binding:"required"`
	Age                      int        `gorm:"not null" json:"age" binding:"min=0,max=18"`
	Gender                   Gender     `gorm:"size:10;not null" json:"gender" binding:"required"`
	DateOfBirth              *time.Time `json:"date_of_birth"`
	MissingDate              time.Time  `gorm:"not null;index" json:"missing_date" binding:"required"`
	MissingLocationCity      string     `gorm:"size:100;not null" json:"missing_location_city" binding:"required"`
	MissingLocationArea      *string    `gorm:"size:100" json:"missing_location_area"`
	MissingLocationLandmark  *string    `gorm:"size:255" json:"missing_location_landmark"`
	MissingLocationLatitude  *float64   `json:"missing_location_latitude"`
	MissingLocationLongitude *float64   `json:"missing_location_longitude"`
	PhysicalDescription      *string    `gorm:"type:text" json:"physical_description"`
	ClothingDescription      *string    `gorm:"type:text" json:"clothing_description"`
	PhotoUrl                 *string    `gorm:"size:255" json:"photo_url"`
	SchoolName               *string    `gorm:"size:150" json:"school_name"`
	ParentGuardianName       *string    `gorm:"size:150" json:"parent_guardian_name"`
	ParentGuardianContact    *string    `gorm:"size:50" json:"parent_guardian_contact"`
	CaseStatus               CaseStatus `gorm:"size:20;not null;default:Open;index" json:"case_status"`
	ReportedBy               int        `json:"reported_by"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMissingChild struct {
	CaseNumber               string     `json:"case_number" binding:"required"`
	FirstName                string     `json:"first_name" binding:"required"`
	LastName                 string     `json:"last_name" binding:"required"`
	Age                      int        `json:"age" binding:"min=0,max=18"`
	Gender                   Gender     `json:"gender" binding:"required"`
	DateOfBirth              *time.Time `json:"date_of_birth"`
	MissingDate              time.Time  `json:"missing_date" binding:"required"`
	MissingLocationCity      string     `json:"missing_location_city" binding:"required"`
	MissingLocationArea      *string    `json:"missing_location_area"`
	MissingLocationLandmark  *string    `json:"missing_location_landmark"`
	MissingLocationLatitude  *float64   `json:"missing_location_latitude"`
	MissingLocationLongitude *float64   `json:"missing_location_longitude"`
	PhysicalDescription      *string    `json:"physical_description"`
	ClothingDescription      *string    `json:"clothing_description"`
	PhotoUrl                 *string    `json:"photo_url"`
	SchoolName               *string    `json:"school_name"`
	ParentGuardianName       *string    `json:"parent_guardian_name"`
	ParentGuardianContact    *string    `json:"parent_guardian_contact"`
}

// CaseHistory is the append-only audit trail of status changes on a case.
type CaseHistory struct {
	ID        int        `gorm:"primary_key" json:"id"`
	ChildId   int        `gorm:"not null;index" json:"child_id"`
	Status    CaseStatus `gorm:"size:20;not null" json:"status"`
	Notes     *string    `gorm:"type:text" json:"notes"`
	UpdatedBy int        `json:"updated_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (input *NewMissingChild) validate(ctx context.Context, id int) error {
	return utils.ValidateUnique[MissingChild](ctx, "case_number", input.CaseNumber, id)
}

func CreateMissingChild(ctx context.Context, input *NewMissingChild) (*MissingChild, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	db := config.GetDB()
	child := MissingChild{
		CaseNumber:               input.CaseNumber,
		FirstName:                input.FirstName,
		LastName:                 input.LastName,
		Age:                      input.Age,
		Gender:                   input.Gender,
		DateOfBirth:              input.DateOfBirth,
		MissingDate:              input.MissingDate,
		MissingLocationCity:      input.MissingLocationCity,
		MissingLocationArea:      input.MissingLocationArea,
		MissingLocationLandmark:  input.MissingLocationLandmark,
		MissingLocationLatitude:  input.MissingLocationLatitude,
		MissingLocationLongitude: input.MissingLocationLongitude,
		PhysicalDescription:      input.PhysicalDescription,
		ClothingDescription:      input.ClothingDescription,
		PhotoUrl:                 input.PhotoUrl,
		SchoolName:               input.SchoolName,
		ParentGuardianName:       input.ParentGuardianName,
		ParentGuardianContact:    input.ParentGuardianContact,
		CaseStatus:               CaseStatusOpen,
		ReportedBy:               userId,
	}
	if err := db.WithContext(ctx).Create(&child).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	// Dashboard counters changed.
	_ = config.RemoveRedisKey(statisticsCacheKey)

	return &child, nil
}

func UpdateMissingChild(ctx context.Context, id int, input *NewMissingChild) (*MissingChild, error) {
	child, err := utils.FetchSingleModel[MissingChild](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(child).Updates(map[string]interface{}{
		"FirstName":                input.FirstName,
		"LastName":                 input.LastName,
		"Age":                      input.Age,
		"Gender":                   input.Gender,
		"DateOfBirth":              input.DateOfBirth,
		"MissingDate":              input.MissingDate,
		"MissingLocationCity":      input.MissingLocationCity,
		"MissingLocationArea":      input.MissingLocationArea,
		"MissingLocationLandmark":  input.MissingLocationLandmark,
		"MissingLocationLatitude":  input.MissingLocationLatitude,
		"MissingLocationLongitude": input.MissingLocationLongitude,
		"PhysicalDescription":      input.PhysicalDescription,
		"ClothingDescription":      input.ClothingDescription,
		"PhotoUrl":                 input.PhotoUrl,
		"SchoolName":               input.SchoolName,
		"ParentGuardianName":       input.ParentGuardianName,
		"ParentGuardianContact":    input.ParentGuardianContact,
	}).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}

	return child, nil
}

func DeleteMissingChild(ctx context.Context, id int) (*MissingChild, error) {
	child, err := utils.FetchSingleModel[MissingChild](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(child).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return child, nil
}

func GetMissingChild(ctx context.Context, id int) (*MissingChild, error) {
	return utils.FetchSingleModel[MissingChild](ctx, id)
}

func GetMissingChildByCaseNumber(ctx context.Context, caseNumber string) (*MissingChild, error) {
	db := config.GetDB()
	var child MissingChild
	if err := db.WithContext(ctx).Where("case_number = ?", caseNumber).First(&child).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &child, nil
}

func GetAllMissingChildren(ctx context.Context, limit int, offset int) ([]*MissingChild, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Order("missing_date DESC")
	if limit > 0 {
		dbCtx = dbCtx.Limit(limit).Offset(offset)
	}
	var children []*MissingChild
	if err := dbCtx.Find(&children).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return children, nil
}

// MissingChildFilter carries the optional search predicates; zero values mean
// "no restriction".
type MissingChildFilter struct {
	Name       string      `json:"name" form:"name"`
	CaseNumber string      `json:"case_number" form:"case_number"`
	Age        *int        `json:"age" form:"age"`
	Gender     *Gender     `json:"gender" form:"gender"`
	City       string      `json:"city" form:"city"`
	DateFrom   *time.Time  `json:"date_from" form:"date_from"`
	DateTo     *time.Time  `json:"date_to" form:"date_to"`
	Status     *CaseStatus `json:"status" form:"status"`
}

func SearchMissingChildren(ctx context.Context, filter *MissingChildFilter) ([]*MissingChild, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)

	if filter.Name != "" {
		term := "%" + filter.Name + "%"
		dbCtx = dbCtx.Where("first_name LIKE ? OR last_name LIKE ?", term, term)
	}
	if filter.CaseNumber != "" {
		dbCtx = dbCtx.Where("case_number LIKE ?", "%"+filter.CaseNumber+"%")
	}
	if filter.Age != nil {
		dbCtx = dbCtx.Where("age = ?", *filter.Age)
	}
	if filter.Gender != nil {
		dbCtx = dbCtx.Where("gender = ?", *filter.Gender)
	}
	if filter.City != "" {
		dbCtx = dbCtx.Where("missing_location_city LIKE ?", "%"+filter.City+"%")
	}
	if filter.DateFrom != nil {
		dbCtx = dbCtx.Where("missing_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		dbCtx = dbCtx.Where("missing_date <= ?", *filter.DateTo)
	}
	if filter.Status != nil {
		dbCtx = dbCtx.Where("case_status = ?", *filter.Status)
	}

	var children []*MissingChild
	if err := dbCtx.Order("missing_date DESC").Find(&children).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return children, nil
}

// UpdateCaseStatus transitions a case and appends to the audit trail.
func UpdateCaseStatus(ctx context.Context, childId int, status CaseStatus, notes string, updatedBy int) error {
	if _, err := utils.FetchSingleModel[MissingChild](ctx, childId); err != nil {
		return err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&MissingChild{}).Where("id = ?", childId).
		Update("case_status", status).Error; err != nil {
		return utils.WrapStoreError(err)
	}

	history := CaseHistory{
		ChildId:   childId,
		Status:    status,
		UpdatedBy: updatedBy,
	}
	if notes != "" {
		history.Notes = &notes
	}
	if err := db.WithContext(ctx).Create(&history).Error; err != nil {
		return utils.WrapStoreError(err)
	}
	_ = config.RemoveRedisKey(statisticsCacheKey)
	return nil
}

func GetCaseHistory(ctx context.Context, childId int) ([]*CaseHistory, error) {
	db := config.GetDB()
	var entries []*CaseHistory
	if err := db.WithContext(ctx).Where("child_id = ?", childId).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return entries, nil
}
