package config

import (
	"fmt"
	"log"
	"os"

	"banner-service/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB opens the postgres connection and migrates the schema.
// TranslateError makes unique/foreign-key violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the services
// downgrade to invalid-input errors.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "banner_service"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.SetupJoinTable(&models.Banner{}, "Tags", &models.BannerTag{}); err != nil {
		log.Fatal("Failed to set up join table: ", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Feature{},
		&models.Banner{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}
