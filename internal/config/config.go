package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Marktplaats MarktplaatsConfig `mapstructure:"marktplaats"`
	Search      SearchConfig      `mapstructure:"search"`
}

// MarktplaatsConfig holds the Marktplaats endpoint configuration
type MarktplaatsConfig struct {
	SearchURL        string `mapstructure:"search_url"`
	LinkBaseURL      string `mapstructure:"link_base_url"`
	SellerProfileURL string `mapstructure:"seller_profile_url"`
	// Timeout in seconds, applied uniformly to every outbound call
	Timeout              int `mapstructure:"timeout"`
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second"`
}

// SearchConfig holds the search the demo command runs
type SearchConfig struct {
	Query       string `mapstructure:"query"`
	Category    string `mapstructure:"category"`
	Postcode    string `mapstructure:"postcode"`
	Distance    int    `mapstructure:"distance"`
	Limit       int    `mapstructure:"limit"`
	Offset      int    `mapstructure:"offset"`
	Language    string `mapstructure:"language"`
	FetchImages bool   `mapstructure:"fetch_images"`
}

// DefaultMarktplaats returns the endpoint configuration for the real
// Marktplaats service. Library users start from this and override what they
// need (tests point the URLs at mock servers).
func DefaultMarktplaats() MarktplaatsConfig {
	return MarktplaatsConfig{
		SearchURL:            "https://www.marktplaats.nl/lrp/api/search",
		LinkBaseURL:          "https://link.marktplaats.nl",
		SellerProfileURL:     "https://www.marktplaats.nl/v/api/seller-profile",
		Timeout:              15,
		MaxRequestsPerSecond: 2,
	}
}

// Load loads configuration from YAML file with environment variable
// overrides. A missing config file is fine; the built-in defaults describe
// the real service.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	defaults := DefaultMarktplaats()
	viper.SetDefault("marktplaats.search_url", defaults.SearchURL)
	viper.SetDefault("marktplaats.link_base_url", defaults.LinkBaseURL)
	viper.SetDefault("marktplaats.seller_profile_url", defaults.SellerProfileURL)
	viper.SetDefault("marktplaats.timeout", defaults.Timeout)
	viper.SetDefault("marktplaats.max_requests_per_second", defaults.MaxRequestsPerSecond)

	viper.SetDefault("search.query", "fiets")
	viper.SetDefault("search.category", "")
	viper.SetDefault("search.postcode", "")
	viper.SetDefault("search.distance", 0)
	viper.SetDefault("search.limit", 5)
	viper.SetDefault("search.offset", 0)
	viper.SetDefault("search.language", "nl")
	viper.SetDefault("search.fetch_images", false)
}
