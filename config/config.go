package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini insight advisor. An empty key is valid: the advisor degrades
	// to an "unavailable" message instead of failing.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Weekly revenue projection factors. These are placeholder heuristics,
	// not statistics derived from history, so they stay tunable.
	WeekAppFactor    float64 `mapstructure:"WEEK_APP_FACTOR"`
	WeekWalkInFactor float64 `mapstructure:"WEEK_WALKIN_FACTOR"`

	// Simulated network latency for the in-memory repositories, in
	// milliseconds. Purely cosmetic so demo clients can show loading
	// states; set to 0 to disable.
	DemoReadLatencyMS  int `mapstructure:"DEMO_READ_LATENCY_MS"`
	DemoWriteLatencyMS int `mapstructure:"DEMO_WRITE_LATENCY_MS"`
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
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("WEEK_APP_FACTOR", 5.2)
	viper.SetDefault("WEEK_WALKIN_FACTOR", 4.8)
	viper.SetDefault("DEMO_READ_LATENCY_MS", 300)
	viper.SetDefault("DEMO_WRITE_LATENCY_MS", 500)

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
