package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env string `mapstructure:"ENV"`

	// Local store
	StorePath string `mapstructure:"STORE_PATH"`

	// Valuation
	BaselineMode string  `mapstructure:"BASELINE_MODE"` // "projection" or "market"
	StrategyCap  float64 `mapstructure:"STRATEGY_CAP"`
	DeltaCap     float64 `mapstructure:"DELTA_CAP"`

	// Percentile normalization
	PercentileMinSample int `mapstructure:"PERCENTILE_MIN_SAMPLE"`

	// Recommendation scoring
	ValueEdgeCap    float64 `mapstructure:"VALUE_EDGE_CAP"`
	ValueEdgeWeight float64 `mapstructure:"VALUE_EDGE_WEIGHT"`
	FitScale        float64 `mapstructure:"FIT_SCALE"`

	// Need boosts by slot scarcity tier
	BoostScarce   float64 `mapstructure:"BOOST_SCARCE"`
	BoostStandard float64 `mapstructure:"BOOST_STANDARD"`
	BoostUtility  float64 `mapstructure:"BOOST_UTILITY"`
	BoostPitching float64 `mapstructure:"BOOST_PITCHING"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("STORE_PATH", "auction.db")
	viper.SetDefault("BASELINE_MODE", "projection")
	viper.SetDefault("STRATEGY_CAP", 6.0)
	viper.SetDefault("DELTA_CAP", 15.0)
	viper.SetDefault("PERCENTILE_MIN_SAMPLE", 25)
	viper.SetDefault("VALUE_EDGE_CAP", 15.0)
	viper.SetDefault("VALUE_EDGE_WEIGHT", 0.9)
	viper.SetDefault("FIT_SCALE", 100.0)
	viper.SetDefault("BOOST_SCARCE", 12.0)
	viper.SetDefault("BOOST_STANDARD", 8.0)
	viper.SetDefault("BOOST_UTILITY", 4.0)
	viper.SetDefault("BOOST_PITCHING", 2.0)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
