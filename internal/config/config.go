package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

const AppName = "globetech-website"

type Config struct {
	AppName string
	AppPort string
	AppURL  string

	MongoURI string
	MongoDB  string

	CloudinaryURL    string
	CloudinaryFolder string

	SendgridAPIKey      string
	SendgridFromEmail   string
	SendgridNotifyEmail string
}

// LoadConfig reads the environment once at startup. A missing
// connection string is a fatal startup condition; everything else has
// a sensible default or degrades a feature.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found, using process environment")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		utils.Logger.Fatal("MONGODB_URI env var is missing")
	}

	cfg := &Config{
		AppName: AppName,
		AppPort: getEnv("APP_PORT", "8080"),
		AppURL:  getEnv("APP_URL", "http://localhost:3000"),

		MongoURI: mongoURI,
		MongoDB:  getEnv("MONGODB_DB", "globetech"),

		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "globetech"),

		SendgridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendgridFromEmail:   os.Getenv("SENDGRID_FROM_EMAIL"),
		SendgridNotifyEmail: os.Getenv("SENDGRID_NOTIFY_EMAIL"),
	}

	if cfg.CloudinaryURL == "" {
		utils.Logger.Warn("CLOUDINARY_URL not set; media uploads will be unavailable")
	}
	if cfg.SendgridAPIKey != "" && (cfg.SendgridFromEmail == "" || cfg.SendgridNotifyEmail == "") {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL and SENDGRID_NOTIFY_EMAIL are required when SENDGRID_API_KEY is set")
	}

	utils.Logger.Infof("Loaded config for %s", cfg.AppName)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
