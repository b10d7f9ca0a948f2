package patterns_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/childfind-ng/childfind_backend/config"
	"github.com/childfind-ng/childfind_backend/models"
	"github.com/childfind-ng/childfind_backend/utils"
)

func setupTestDB(t *testing.T) context.Context {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// Each pooled connection would otherwise see its own :memory: database.
	sqlDB.SetMaxOpenConns(1)

	config.UseDatabase(db)
	models.MigrateTable()

	return utils.SetUserIdInContext(context.Background(), 1)
}

type caseSpec struct {
	caseNumber string
	age        int
	gender     models.Gender
	city       string
	area       string
	lat, lon   float64
	hasCoords  bool
	missing    time.Time
}

func mustCreateCase(t *testing.T, ctx context.Context, spec caseSpec) *models.MissingChild {
	t.Helper()

	if spec.gender == "" {
		spec.gender = models.GenderFemale
	}
	if spec.missing.IsZero() {
		spec.missing = time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)
	}
	input := models.NewMissingChild{
		CaseNumber:          spec.caseNumber,
		FirstName:           "Test",
		LastName:            spec.caseNumber,
		Age:                 spec.age,
		Gender:              spec.gender,
		MissingDate:         spec.missing,
		MissingLocationCity: spec.city,
	}
	if spec.area != "" {
		input.MissingLocationArea = &spec.area
	}
	if spec.hasCoords {
		input.MissingLocationLatitude = &spec.lat
		input.MissingLocationLongitude = &spec.lon
	}

	child, err := models.CreateMissingChild(ctx, &input)
	if err != nil {
		t.Fatalf("CreateMissingChild(%s): %v", spec.caseNumber, err)
	}
	return child
}
