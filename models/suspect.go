package models

import (
	"context"
	"time"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/utils"
	"gorm.io/gorm/clause"
)

type Suspect struct {
	ID                  int       `gorm:"primary_key" json:"id"`
	FirstName           *string   `gorm:"size:100" json:"first_name"`
	LastName            *string   `gorm:"size:100" json:"last_name"`
	Alias               *string   `gorm:"size:100" json:"alias"`
	Age                 *int      `json:"age"`
	Gender              *Gender   `gorm:"size:10" json:"gender"`
	PhysicalDescription *string   `gorm:"type:text" json:"physical_description"`
	KnownAddress        *string   `gorm:"size:255" json:"known_address"`
	CriminalHistory     *string   `gorm:"type:text" json:"criminal_history"`
	PhotoUrl            *string   `gorm:"size:255" json:"photo_url"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SuspectCase links a suspect to a case. One link per (suspect, child) pair;
// re-linking updates association type and description in place.
type SuspectCase struct {
	ID              int             `gorm:"primary_key" json:"id"`
	SuspectId       int             `gorm:"not null;uniqueIndex:idx_suspect_child" json:"suspect_id"`
	ChildId         int             `gorm:"not null;uniqueIndex:idx_suspect_child" json:"child_id"`
	AssociationType AssociationType `gorm:"size:20;not null" json:"association_type"`
	Description     *string         `gorm:"type:text" json:"description"`
	ReportedBy      int             `json:"reported_by"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewSuspect struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Alias               *string `json:"alias"`
	Age                 *int    `json:"age"`
	Gender              *Gender `json:"gender"`
	PhysicalDescription *string `json:"physical_description"`
	KnownAddress        *string `json:"known_address"`
	CriminalHistory     *string `json:"criminal_history"`
	PhotoUrl            *string `json:"photo_url"`
}

func CreateSuspect(ctx context.Context, input *NewSuspect) (*Suspect, error) {
	db := config.GetDB()
	suspect := Suspect{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Alias:               input.Alias,
		Age:                 input.Age,
		Gender:              input.Gender,
		PhysicalDescription: input.PhysicalDescription,
		KnownAddress:        input.KnownAddress,
		CriminalHistory:     input.CriminalHistory,
		PhotoUrl:            input.PhotoUrl,
	}
	if err := db.WithContext(ctx).Create(&suspect).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return &suspect, nil
}

func UpdateSuspect(ctx context.Context, id int, input *NewSuspect) (*Suspect, error) {
	suspect, err := utils.FetchSingleModel[Suspect](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(suspect).Updates(map[string]interface{}{
		"FirstName":           input.FirstName,
		"LastName":            input.LastName,
		"Alias":               input.Alias,
		"Age":                 input.Age,
		"Gender":              input.Gender,
		"PhysicalDescription": input.PhysicalDescription,
		"KnownAddress":        input.KnownAddress,
		"CriminalHistory":     input.CriminalHistory,
		"PhotoUrl":            input.PhotoUrl,
	}).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return suspect, nil
}

func DeleteSuspect(ctx context.Context, id int) (*Suspect, error) {
	suspect, err := utils.FetchSingleModel[Suspect](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(suspect).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return suspect, nil
}

func GetSuspect(ctx context.Context, id int) (*Suspect, error) {
	return utils.FetchSingleModel[Suspect](ctx, id)
}

func GetAllSuspects(ctx context.Context) ([]*Suspect, error) {
	db := config.GetDB()
	var suspects []*Suspect
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&suspects).Error; err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return suspects, nil
}

type NewSuspectCaseLink struct {
	ChildId         int             `json:"child_id" binding:"required"`
	AssociationType AssociationType `json:"association_type" binding:"required"`
	Description     *string         `json:"description"`
}

// LinkSuspectToCase upserts the (suspect, child) link.
func LinkSuspectToCase(ctx context.Context, suspectId int, input *NewSuspectCaseLink) (*SuspectCase, error) {
	if err := utils.ValidateResourceId[Suspect](ctx, suspectId); err != nil {
		return nil, err
	}
	if err := utils.ValidateResourceId[MissingChild](ctx, input.ChildId); err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	link := SuspectCase{
		SuspectId:       suspectId,
		ChildId:         input.ChildId,
		AssociationType: input.AssociationType,
		Description:     input.Description,
		ReportedBy:      userId,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "suspect_id"}, {Name: "child_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"association_type", "description"}),
	}).Create(&link).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return &link, nil
}

type SuspectWithLink struct {
	Suspect
	AssociationType AssociationType `json:"association_type"`
	LinkDescription *string         `json:"link_description"`
	LinkedAt        time.Time       `json:"linked_at"`
}

func GetSuspectsByCase(ctx context.Context, childId int) ([]*SuspectWithLink, error) {
	db := config.GetDB()
	var rows []*SuspectWithLink
	err := db.WithContext(ctx).Model(&Suspect{}).
		Select("suspects.*, suspect_cases.association_type AS association_type, suspect_cases.description AS link_description, suspect_cases.created_at AS linked_at").
		Joins("JOIN suspect_cases ON suspects.id = suspect_cases.suspect_id").
		Where("suspect_cases.child_id = ?", childId).
		Scan(&rows).Error
	if err != nil {
		return nil, utils.WrapStoreError(err)
	}
	return rows, nil
}
