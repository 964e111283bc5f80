package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	JWTGuestExpiry   time.Duration

	// Admin allow-list (comma-separated emails)
	AdminEmails string

	// Asset storage (S3-compatible)
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3PublicPrefix string

	// Google Maps platform
	GeocodeAPIURL string
	PlacesAPIURL  string
	MapsAPIKey    string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "tanuki_map"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),
		JWTGuestExpiry:   parseDuration(getEnv("JWT_GUEST_EXPIRY", "720h")),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),

		S3Bucket:       getEnv("S3_BUCKET", "tanuki-photos"),
		S3Region:       getEnv("S3_REGION", "ap-northeast-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3PublicPrefix: getEnv("S3_PUBLIC_PREFIX", ""),

		GeocodeAPIURL: getEnv("GEOCODE_API_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		PlacesAPIURL:  getEnv("PLACES_API_URL", "https://maps.googleapis.com/maps/api/place/textsearch/json"),
		MapsAPIKey:    getEnv("MAPS_API_KEY", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
