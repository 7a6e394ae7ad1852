package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Economy   EconomyConfig
	Discovery DiscoveryConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// EconomyConfig holds the coin economy knobs. The amounts are product
// parameters, not business rules, so they live in config.
type EconomyConfig struct {
	StartingBalance int
	UnlockCost      int
}

// DiscoveryConfig holds the discovery feed knobs.
type DiscoveryConfig struct {
	// MatchProbability is the chance a right-swipe turns into a match, in [0,1].
	MatchProbability float64
	// MinCompletion is the completion score (0-100) required to browse.
	MinCompletion int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STARTING_BALANCE", 250)
	viper.SetDefault("UNLOCK_COST", 50)
	viper.SetDefault("MATCH_PROBABILITY", 0.3)
	viper.SetDefault("DISCOVERY_MIN_COMPLETION", 40)

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Economy: EconomyConfig{
			StartingBalance: viper.GetInt("STARTING_BALANCE"),
			UnlockCost:      viper.GetInt("UNLOCK_COST"),
		},
		Discovery: DiscoveryConfig{
			MatchProbability: viper.GetFloat64("MATCH_PROBABILITY"),
			MinCompletion:    viper.GetInt("DISCOVERY_MIN_COMPLETION"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Economy.StartingBalance < 0 {
		return fmt.Errorf("starting balance must be non-negative, got %d", c.Economy.StartingBalance)
	}
	if c.Economy.UnlockCost < 0 {
		return fmt.Errorf("unlock cost must be non-negative, got %d", c.Economy.UnlockCost)
	}
	if c.Discovery.MatchProbability < 0 || c.Discovery.MatchProbability > 1 {
		return fmt.Errorf("match probability must be in [0,1], got %f", c.Discovery.MatchProbability)
	}
	if c.Discovery.MinCompletion < 0 || c.Discovery.MinCompletion > 100 {
		return fmt.Errorf("discovery min completion must be in [0,100], got %d", c.Discovery.MinCompletion)
	}
	return nil
}

// GetAddr returns the listen address
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
