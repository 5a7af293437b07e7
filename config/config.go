package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	PublicOrigin      string `mapstructure:"PUBLIC_ORIGIN"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB        int    `mapstructure:"REDIS_AUTH_DB"`
	RedisCredentialsDB int    `mapstructure:"REDIS_CREDENTIALS_DB"`
	RedisSweepQueueDB  int    `mapstructure:"REDIS_SWEEP_QUEUE_DB"`

	// Device pairing.
	// DeviceKey is the shared secret handed to a device after a successful
	// pairing; DeviceKeyDigest is the lowercase hex SHA-256 the gate checks
	// presented keys against.
	DeviceKey       string `mapstructure:"DEVICE_KEY"`
	DeviceKeyDigest string `mapstructure:"DEVICE_KEY_DIGEST"`

	// AllowLocalAdmin enables the admin/admin123 local sign-in shortcut.
	// Development convenience only; keep disabled in production.
	AllowLocalAdmin bool `mapstructure:"ALLOW_LOCAL_ADMIN"`

	// Firebase service account for push notifications (empty disables push).
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("PUBLIC_ORIGIN", "https://koon.example.com")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_CREDENTIALS_DB", 2)
	viper.SetDefault("REDIS_SWEEP_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "koon")
	viper.SetDefault("DEVICE_KEY", "MAC_BOOK_PRO_SECURE_ID_9928374")
	viper.SetDefault("DEVICE_KEY_DIGEST", "44230255bc9ed1c098bb4c8de653fc8d598e550151f2ba8d61dec6e1f672c6b2")
	viper.SetDefault("ALLOW_LOCAL_ADMIN", false)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
