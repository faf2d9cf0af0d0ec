package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// OY! Indonesia payment gateway
	OYAPIKey         string
	OYBaseURL        string
	OYCallbackSecret string

	// Email transport
	EmailProvider string
	EmailFrom     string
	AdminEmail    string

	// Public base URL used to build callback and download links
	AppBaseURL string
}

// LoadConfig loads configuration from environment variables. A .env file is
// optional; real deployments provide the environment directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		OYAPIKey:         os.Getenv("OY_API_KEY"),
		OYBaseURL:        os.Getenv("OY_BASE_URL"),
		OYCallbackSecret: os.Getenv("OY_CALLBACK_SECRET"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AppBaseURL:       os.Getenv("APP_BASE_URL"),
	}

	if config.OYBaseURL == "" {
		config.OYBaseURL = "https://api-stg.oyindonesia.com"
	}
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.AppBaseURL == "" {
		config.AppBaseURL = "http://localhost:" + config.Port
	}

	return config, nil
}
