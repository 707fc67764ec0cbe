package config

// CaseSensitiveEnv is the environment variable whose presence, with any
// value, selects case-sensitive search.
const CaseSensitiveEnv = "CASE_SENSITIVE"

// ConfigEnv names an optional YAML settings file. VerboseEnv, when set to a
// non-empty value, turns on diagnostics. Both live in the environment so that
// every command-line argument stays available as a query or filename.
const (
	ConfigEnv  = "MINIGREP_CONFIG"
	VerboseEnv = "MINIGREP_VERBOSE"
)

type Log struct {
	File       string `yaml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// Config is the effective runtime configuration. CaseSensitive and Verbose
// come from the environment only, never from a file. Color allows ANSI
// colors; they are still only used when stderr is a terminal.
type Config struct {
	CaseSensitive bool `yaml:"-" json:"-"`
	Verbose       bool `yaml:"-" json:"-"`
	Color         bool `yaml:"color" json:"color"`
	Log           Log  `yaml:"log" json:"log"`
}

// fileConfig mirrors Config with optional fields so a settings file only
// overrides what it names.
type fileConfig struct {
	Color *bool    `yaml:"color"`
	Log   *fileLog `yaml:"log"`
}

type fileLog struct {
	File       string `yaml:"file"`
	MaxSizeMB  *int   `yaml:"max_size_mb"`
	MaxBackups *int   `yaml:"max_backups"`
	MaxAgeDays *int   `yaml:"max_age_days"`
	Compress   *bool  `yaml:"compress"`
}

func Default() Config {
	return Config{
		Color: true,
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
