package db

import (
	"os"

	"inkwell/internal/models"
	"inkwell/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=inkwell port=5432 sslmode=disable"
	}

	log := logger.Get()

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database migration completed")

	// Seed initial groups
	seedGroups()
}

// Migrate creates or updates the schema for every entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
}

func seedGroups() {
	log := logger.Get()

	var count int64
	DB.Model(&models.Group{}).Count(&count)
	if count > 0 {
		log.Debug("Groups already seeded, skipping")
		return
	}

	groups := []models.Group{
		{Title: "Notes", Slug: "notes", Description: "Everyday notes and short reads"},
		{Title: "Travel", Slug: "travel", Description: "Trip reports and places worth seeing"},
		{Title: "Tech", Slug: "tech", Description: "Software, hardware and everything between"},
		{Title: "Books", Slug: "books", Description: "What we read and what we think about it"},
	}

	for _, group := range groups {
		if err := DB.Create(&group).Error; err != nil {
			log.Warn("Failed to create group", zap.String("slug", group.Slug), zap.Error(err))
		}
	}
	log.Info("Initial groups created")
}
