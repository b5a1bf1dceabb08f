package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Store    StoreConfig
	Telegram TelegramConfig
	Business BusinessConfig
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// StoreConfig selects where the menu is kept: "postgres", "sqlite" or "memory".
type StoreConfig struct {
	Driver      string
	SQLitePath  string
	AutoMigrate bool
}

type TelegramConfig struct {
	Token          string
	MessageToken   string // token for sending order notifications to the business chat
	BusinessChatID int64
	AdminID        int64 // 0: every chat may open the catalog editor
}

type BusinessConfig struct {
	Phone string // WhatsApp number orders are sent to, digits only
	Lang  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	chatID, _ := strconv.ParseInt(getEnv("BUSINESS_CHAT_ID", "0"), 10, 64)
	adminID, _ := strconv.ParseInt(getEnv("ADMIN_ID", "0"), 10, 64)
	autoMigrate := strings.TrimSpace(os.Getenv("AUTO_MIGRATE"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "catering"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
			SQLitePath:  getEnv("SQLITE_PATH", "catering.db"),
			AutoMigrate: autoMigrate == "1" || strings.EqualFold(autoMigrate, "true"),
		},
		Telegram: TelegramConfig{
			Token:          getEnv("TOKEN", ""),
			MessageToken:   getEnv("MESSAGE_TOKEN", ""),
			BusinessChatID: chatID,
			AdminID:        adminID,
		},
		Business: BusinessConfig{
			Phone: getEnv("BUSINESS_PHONE", "972500000000"),
			Lang:  getEnv("LANG_CODE", "he"),
		},
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
