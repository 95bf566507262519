package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisMailQueueDB int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`

	// Stripe.
	StripeKey string `mapstructure:"STRIPE_KEY"`
	Currency  string `mapstructure:"CURRENCY"`

	// Civil timezone every date and time in the system is interpreted in.
	Timezone string `mapstructure:"TIMEZONE"`

	// Business hours, minutes from midnight.
	WeekdayOpenMinutes int `mapstructure:"WEEKDAY_OPEN_MINUTES"`
	WeekendOpenMinutes int `mapstructure:"WEEKEND_OPEN_MINUTES"`
	CloseMinutes       int `mapstructure:"CLOSE_MINUTES"`

	// Scheduling knobs.
	LeadTimeMinutes       int `mapstructure:"LEAD_TIME_MINUTES"`
	SlotStepMinutes       int `mapstructure:"SLOT_STEP_MINUTES"`
	DefaultCleanupMinutes int `mapstructure:"DEFAULT_CLEANUP_MINUTES"`
	StalePendingMinutes   int `mapstructure:"STALE_PENDING_MINUTES"`

	// Base URL used in reschedule/cancel links sent by email.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

var AppConfig Config

// Location is the fixed civil timezone, loaded once by LoadConfig.
var Location *time.Location

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
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "roomly")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CURRENCY", "pln")
	viper.SetDefault("TIMEZONE", "Europe/Warsaw")
	viper.SetDefault("WEEKDAY_OPEN_MINUTES", 10*60)
	viper.SetDefault("WEEKEND_OPEN_MINUTES", 9*60)
	viper.SetDefault("CLOSE_MINUTES", 21*60)
	viper.SetDefault("LEAD_TIME_MINUTES", 60)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("DEFAULT_CLEANUP_MINUTES", 15)
	viper.SetDefault("STALE_PENDING_MINUTES", 18)
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", AppConfig.Timezone, err)
	}
	Location = loc
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
