package config

// LogLevel is the minimum level written by the logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// LogFormat selects the log encoder.
type LogFormat string

const (
	FormatConsole LogFormat = "console"
	FormatJSON    LogFormat = "json"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	SiteTitle       string    `yaml:"site_title" koanf:"site_title"`
	SiteDir         string    `yaml:"site_dir" koanf:"site_dir"`
	DatasetURL      string    `yaml:"dataset_url,omitempty" koanf:"dataset_url"`
	DatasetPath     string    `yaml:"dataset_path" koanf:"dataset_path"`
	DetailPath      string    `yaml:"detail_path" koanf:"detail_path"`
	OutputDir       string    `yaml:"output_dir" koanf:"output_dir"`
	Port            int       `yaml:"port" koanf:"port"`
	Include         []string  `yaml:"include,omitempty" koanf:"include"`
	Exclude         []string  `yaml:"exclude,omitempty" koanf:"exclude"`
	LogLevel        LogLevel  `yaml:"log_level" koanf:"log_level"`
	LogFormat       LogFormat `yaml:"log_format" koanf:"log_format"`
	AllowAllOrigins bool      `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTL      int       `yaml:"session_ttl" koanf:"session_ttl"` // seconds
}
