package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling defaults.
	DefaultTimezone       string `mapstructure:"DEFAULT_TIMEZONE"`
	SlotStepMinutes       int    `mapstructure:"SLOT_STEP_MINUTES"`
	SuggestedSlotCount    int    `mapstructure:"SUGGESTED_SLOT_COUNT"`
	PendingExpirationHrs  int    `mapstructure:"PENDING_EXPIRATION_HOURS"`
	SweepIntervalMinutes  int    `mapstructure:"SWEEP_INTERVAL_MINUTES"`
	BulkUpdateLimit       int    `mapstructure:"BULK_UPDATE_LIMIT"`
	AutoConfirmBookings   bool   `mapstructure:"AUTO_CONFIRM_BOOKINGS"`
	ExplicitExceptionWins bool   `mapstructure:"EXPLICIT_EXCEPTION_WINS"`
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DEFAULT_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("SLOT_STEP_MINUTES", 15)
	viper.SetDefault("SUGGESTED_SLOT_COUNT", 3)
	viper.SetDefault("PENDING_EXPIRATION_HOURS", 2)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 10)
	viper.SetDefault("BULK_UPDATE_LIMIT", 50)
	viper.SetDefault("AUTO_CONFIRM_BOOKINGS", false)
	viper.SetDefault("EXPLICIT_EXCEPTION_WINS", true)

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
