package database

import (
	"fmt"
	"log"
	"time"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres variant of the store.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// ConnectSQLite opens the embedded file-backed variant of the store.
func ConnectSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %v", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.WorkItem{},
		&models.GuestbookEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// CreateDefaultAdmin seeds the configured admin account if it does not exist
// yet. Password is stored as a bcrypt hash.
func CreateDefaultAdmin(db *gorm.DB, config models.AdminConfig) error {
	var user models.User
	result := db.Where("username = ?", config.Username).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(config.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %v", err)
		}

		admin := models.User{
			Username: config.Username,
			Password: string(hash),
			IsAdmin:  true,
		}

		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create default admin user: %v", err)
		}

		log.Printf("Default admin user '%s' created successfully", config.Username)
	}

	return nil
}
