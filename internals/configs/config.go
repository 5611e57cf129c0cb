package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	AccessTokenTTL time.Duration
	AdminEmail     string
	NotifyDriver   string
	SendgridAPIKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARNING] No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminEmail = GetEnv("ADMIN_EMAIL")
	NotifyDriver = GetEnv("NOTIFY_DRIVER", "console")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	AccessTokenTTL = time.Duration(GetEnvInt("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if NotifyDriver == "sendgrid" && SendgridAPIKey == "" {
		log.Println("❌ NOTIFY_DRIVER=sendgrid but SENDGRID_API_KEY is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
