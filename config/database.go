package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campsite/models"
)

var DB *gorm.DB

func buildDSN() string {
	host := GetEnvDefault("DB_HOST", "localhost")
	port := GetEnvDefault("DB_PORT", "5432")
	user := GetEnvDefault("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD")
	name := GetEnvDefault("DB_NAME", "campsite")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Europe/Berlin",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error

	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB keeps the schema in sync with the models at startup.
func MigrateDB() {
	if err := DB.AutoMigrate(
		&models.Employee{},
		&models.CampingPlace{},
		&models.CampingItem{},
		&models.Booking{},
		&models.BookingItem{},
		&models.BookingStatusChange{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
