package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campsite/models"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Employee{},
		&models.CampingPlace{},
		&models.CampingItem{},
		&models.Booking{},
		&models.BookingItem{},
		&models.BookingStatusChange{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestPlace(t *testing.T, db *gorm.DB, name string, price float64) models.CampingPlace {
	t.Helper()

	place := models.CampingPlace{
		Name:     name,
		Location: "Teststadt",
		Size:     100,
		Price:    price,
		IsActive: true,
	}
	if err := db.Create(&place).Error; err != nil {
		t.Fatalf("failed to create test place: %v", err)
	}
	return place
}

func createTestItem(t *testing.T, db *gorm.DB, name string) models.CampingItem {
	t.Helper()

	item := models.CampingItem{
		Name:     name,
		Category: "tent",
		Size:     10,
		IsActive: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}
