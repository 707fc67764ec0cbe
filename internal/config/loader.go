package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var current = Default()

func Get() Config { return current }

// FromEnv sets CaseSensitive on base from the presence of CASE_SENSITIVE.
// The value is never inspected: "", "0" and "false" all count as set.
func FromEnv(base Config, lookup func(string) (string, bool)) Config {
	_, set := lookup(CaseSensitiveEnv)
	base.CaseSensitive = set
	v, _ := lookup(VerboseEnv)
	base.Verbose = v != ""
	return base
}

// Load builds the effective configuration: defaults, then the settings file
// named by MINIGREP_CONFIG if any, then the environment. The result becomes
// what Get returns.
func Load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path, _ := lookup(ConfigEnv); path != "" {
		var err error
		cfg, err = LoadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}
	cfg = FromEnv(cfg, lookup)
	current = cfg
	return cfg, nil
}

// LoadFile overlays the YAML settings file at path onto base. The file is
// checked against the embedded schema before it is applied.
func LoadFile(base Config, path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return LoadBytes(base, b, path)
}

// LoadBytes is LoadFile for in-memory YAML; name is used in error messages.
func LoadBytes(base Config, b []byte, name string) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validateDocument(raw); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	var part fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&part); err != nil && len(raw) > 0 {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	merged := mergeConfig(base, part)
	if err := ValidateAgainstSchema(merged); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return merged, nil
}

func mergeConfig(base Config, overlay fileConfig) Config {
	out := base
	if overlay.Color != nil {
		out.Color = *overlay.Color
	}
	if overlay.Log != nil {
		out.Log = mergeLog(out.Log, *overlay.Log)
	}
	return out
}

func mergeLog(a Log, b fileLog) Log {
	out := a
	if b.File != "" {
		out.File = b.File
	}
	if b.MaxSizeMB != nil {
		out.MaxSizeMB = *b.MaxSizeMB
	}
	if b.MaxBackups != nil {
		out.MaxBackups = *b.MaxBackups
	}
	if b.MaxAgeDays != nil {
		out.MaxAgeDays = *b.MaxAgeDays
	}
	if b.Compress != nil {
		out.Compress = *b.Compress
	}
	return out
}
