package database

import (
	"testing"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:dbtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestMigrateAndSeedAdmin(t *testing.T) {
	db := openTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	cfg := models.AdminConfig{Username: "webmastr", Password: "s3cret"}
	if err := CreateDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("CreateDefaultAdmin failed: %v", err)
	}

	var admin models.User
	if err := db.Where("username = ?", "webmastr").First(&admin).Error; err != nil {
		t.Fatalf("admin user not seeded: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatal("seeded admin is missing the admin flag")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")); err != nil {
		t.Fatalf("admin password hash does not verify: %v", err)
	}

	// Seeding again must not duplicate or overwrite.
	if err := CreateDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("second CreateDefaultAdmin failed: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Where("username = ?", "webmastr").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one admin row, got %d", count)
	}
}
