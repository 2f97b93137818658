package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Log       LogConfig
	Loyalty   LoyaltyConfig
	Directory DirectoryConfig
	Seed      SeedConfig
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type LoyaltyConfig struct {
	// Mode is "derived" or "stored"; see internal/domain/loyalty.
	Mode             string `envconfig:"LOYALTY_MODE" default:"derived"`
	SignupGrant      int    `envconfig:"LOYALTY_SIGNUP_GRANT" default:"100"`
	ReservationBonus int    `envconfig:"LOYALTY_RESERVATION_BONUS" default:"10"`
}

type DirectoryConfig struct {
	// SnapshotPath enables the optional user directory snapshot when set.
	// Reservations and the menu are always in-memory only.
	SnapshotPath string `envconfig:"DIRECTORY_SNAPSHOT_PATH" default:""`
}

type SeedConfig struct {
	// Path to a YAML seed file; when empty the built-in default menu is used.
	Path string `envconfig:"SEED_PATH" default:""`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Loyalty: LoyaltyConfig{
			Mode:             "derived",
			SignupGrant:      100,
			ReservationBonus: 10,
		},
	}
}
