package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/portfolio"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger: JSON for log_format json, console
// otherwise. --verbose forces debug level.
func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.LogFormat == config.FormatJSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(string(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("parsing log_level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newLoader picks the dataset source: dataset_url when set, the dataset
// file inside site_dir otherwise.
func newLoader(cfg *config.Config) (*portfolio.Loader, error) {
	if cfg.DatasetURL != "" {
		src, err := portfolio.NewHTTPSource("", cfg.DatasetURL)
		if err != nil {
			return nil, err
		}
		return portfolio.NewLoader(src), nil
	}
	return portfolio.NewLoader(portfolio.FileSource{Path: cfg.DatasetFile()}), nil
}
