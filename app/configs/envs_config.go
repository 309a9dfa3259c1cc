package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string

	GatewayDelay time.Duration

	// FreeDeliveryMin overrides the rupee subtotal at which delivery
	// becomes free.
	FreeDeliveryMin int64

	AppEnv string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		Port:            getenvDefault("APP_PORT", ":8080"),
		AppAuthKey:      os.Getenv("APP_AUTH_KEY"),
		AppEncKey:       os.Getenv("APP_ENC_KEY"),
		GatewayDelay:    gatewayDelay(),
		FreeDeliveryMin: freeDeliveryMin(),
		AppEnv:          os.Getenv("APP_ENV"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// gatewayDelay reads the simulated network delay in milliseconds,
// defaulting to the 1.5s the storefront uses.
func gatewayDelay() time.Duration {
	raw := os.Getenv("GATEWAY_DELAY_MS")
	if raw == "" {
		return 1500 * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("Warning: invalid GATEWAY_DELAY_MS %q, using default", raw)
		return 1500 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// freeDeliveryMin reads the free-delivery subtotal override in rupees,
// defaulting to the storefront's 500.
func freeDeliveryMin() int64 {
	raw := os.Getenv("FREE_DELIVERY_MIN")
	if raw == "" {
		return 500
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		log.Printf("Warning: invalid FREE_DELIVERY_MIN %q, using default", raw)
		return 500
	}
	return n
}

var LoadENV = LoadEnv()
