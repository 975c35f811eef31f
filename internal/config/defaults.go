package config

import (
	"path/filepath"
	"time"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".folio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:   "Portfolio",
		SiteDir:     ".",
		DatasetPath: "data/projects.json",
		DetailPath:  "projects/project.html",
		OutputDir:   "public",
		Port:        8080,
		LogLevel:    LogInfo,
		LogFormat:   FormatConsole,
		SessionTTL:  300,
	}
}

// DatasetFile is the dataset location on disk.
func (c *Config) DatasetFile() string {
	return filepath.Join(c.SiteDir, filepath.FromSlash(c.DatasetPath))
}

// SessionTimeout is SessionTTL as a duration.
func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}
