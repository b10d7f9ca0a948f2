package models_test

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

// setupTestDB points the engine at a fresh in-memory sqlite database. Tests
// run against the same query surface the MySQL store uses.
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

func mustCreateCase(t *testing.T, ctx context.Context, input *models.NewMissingChild) *models.MissingChild {
	t.Helper()
	if input.MissingDate.IsZero() {
		input.MissingDate = time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)
	}
	child, err := models.CreateMissingChild(ctx, input)
	if err != nil {
		t.Fatalf("CreateMissingChild(%s): %v", input.CaseNumber, err)
	}
	return child
}
