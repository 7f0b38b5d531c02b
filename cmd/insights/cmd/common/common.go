package common

import (
	"fmt"

	"go.uber.org/zap"

	"meeting-insights/internal/app/logging"
	"meeting-insights/internal/config"
)

var (
	ConfigFile string
	Verbose    bool
)

// Load reads configuration and builds the logger every subcommand uses
func Load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	if Verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}
