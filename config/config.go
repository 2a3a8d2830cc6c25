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
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Google Calendar OAuth client (the refresh token itself is stored per
	// host; acquisition happens in the onboarding flow, not here).
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`

	// Scheduling knobs. Fixed product constants in practice, named here so
	// tests can construct engines with different values.
	BookingLeadTimeHours    int `mapstructure:"BOOKING_LEAD_TIME_HOURS"`
	GcalCacheTTLMinutes     int `mapstructure:"GCAL_CACHE_TTL_MINUTES"`
	GcalFetchTimeoutSeconds int `mapstructure:"GCAL_FETCH_TIMEOUT_SECONDS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "hostly")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("BOOKING_LEAD_TIME_HOURS", 24)
	viper.SetDefault("GCAL_CACHE_TTL_MINUTES", 5)
	viper.SetDefault("GCAL_FETCH_TIMEOUT_SECONDS", 10)

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

// BookingLeadTime returns the minimum advance notice before a slot may start.
func BookingLeadTime() time.Duration {
	return time.Duration(AppConfig.BookingLeadTimeHours) * time.Hour
}

// GcalCacheTTL returns how long fetched busy intervals stay cached.
func GcalCacheTTL() time.Duration {
	return time.Duration(AppConfig.GcalCacheTTLMinutes) * time.Minute
}

// GcalFetchTimeout bounds a single external calendar fetch.
func GcalFetchTimeout() time.Duration {
	return time.Duration(AppConfig.GcalFetchTimeoutSeconds) * time.Second
}
