package workflow_test

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

func mustCreateCase(t *testing.T, ctx context.Context, caseNumber, city, area string) *models.MissingChild {
	t.Helper()
	input := models.NewMissingChild{
		CaseNumber:          caseNumber,
		FirstName:           "Test",
		LastName:            caseNumber,
		Age:                 9,
		Gender:              models.GenderFemale,
		MissingDate:         time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC),
		MissingLocationCity: city,
	}
	if area != "" {
		input.MissingLocationArea = &area
	}
	child, err := models.CreateMissingChild(ctx, &input)
	if err != nil {
		t.Fatalf("CreateMissingChild(%s): %v", caseNumber, err)
	}
	return child
}
