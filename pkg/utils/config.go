package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Upsell   UpsellConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	LabelsPath string
	// HotelAPIKey gates the hotel-side proposal endpoints.
	HotelAPIKey string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type UpsellConfig struct {
	// RemoveSettleDelay is waited before an item removal is pushed to the
	// booking engine, so the guest still sees the line while it settles.
	RemoveSettleDelay time.Duration
	// MinBidFactor and MaxBidFactor bound the slider relative to room price.
	MinBidFactor     float64
	MaxBidFactor     float64
	DefaultBidFactor float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 72)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("LABELS_PATH", "labels.json")
	viper.SetDefault("REMOVE_SETTLE_DELAY_MS", 1500)
	viper.SetDefault("MIN_BID_FACTOR", 0.01)
	viper.SetDefault("MAX_BID_FACTOR", 2.0)
	viper.SetDefault("DEFAULT_BID_FACTOR", 0.05)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			LabelsPath:  viper.GetString("LABELS_PATH"),
			HotelAPIKey: viper.GetString("HOTEL_API_KEY"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Upsell: UpsellConfig{
			RemoveSettleDelay: time.Duration(viper.GetInt("REMOVE_SETTLE_DELAY_MS")) * time.Millisecond,
			MinBidFactor:      viper.GetFloat64("MIN_BID_FACTOR"),
			MaxBidFactor:      viper.GetFloat64("MAX_BID_FACTOR"),
			DefaultBidFactor:  viper.GetFloat64("DEFAULT_BID_FACTOR"),
		},
	}

	return config, nil
}
