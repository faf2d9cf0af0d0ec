package config

import (
	"fmt"

	"github.com/aditya-714/DevPorto/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// MigrateModels runs AutoMigrate for every model in the application. Tests
// reuse it against their own database handle.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Profile{},
		&models.SocialLink{},
		&models.Experience{},
		&models.Blog{},
		&models.Project{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Transaction{},
		&models.CallbackLog{},
	)
}
