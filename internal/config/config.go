// Package config loads game configuration from an HCL file, with
// sensible defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/golfcli/golf/internal/golf"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// GameSettings contains the tableau shape and deal seed
type GameSettings struct {
	Columns        int   `hcl:"columns,optional"`
	CardsPerColumn int   `hcl:"cards_per_column,optional"`
	Seed           int64 `hcl:"seed,optional"` // 0 means a random deal
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel         string `hcl:"log_level,optional"`
	LogFile          string `hcl:"log_file,optional"`
	ShowRulesOnStart bool   `hcl:"show_rules_on_start,optional"`
}

// DefaultConfig returns the default configuration: the standard 7x5
// layout, a random deal and warn-level logging to golf.log
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			Columns:        7,
			CardsPerColumn: 5,
			Seed:           0,
		},
		UI: UISettings{
			LogLevel:         "warn",
			LogFile:          "golf.log",
			ShowRulesOnStart: false,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file is
// not an error; it yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Game.Columns == 0 {
		config.Game.Columns = defaults.Game.Columns
	}
	if config.Game.CardsPerColumn == 0 {
		config.Game.CardsPerColumn = defaults.Game.CardsPerColumn
	}

	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.GameConfig().Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// GameConfig returns the engine configuration for the tableau shape
func (c *Config) GameConfig() golf.Config {
	return golf.Config{
		Columns:        c.Game.Columns,
		CardsPerColumn: c.Game.CardsPerColumn,
	}
}
