package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local configuration file.
const LocalPath = "configs/mines.yaml"

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceEmbedded Source = "embedded"
)

// Load reads the configuration.
// Search order: customPath -> ~/.mines/config.yaml -> ./configs/mines.yaml
// -> embedded default -> DefaultConfig().
//
// Files are layered over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		path, err := ExpandPath(customPath)
		if err != nil {
			return DefaultConfig(), SourceBuiltin, err
		}
		cfg, err := loadFile(path)
		if err != nil {
			return DefaultConfig(), SourceBuiltin, err
		}
		return cfg, Source(customPath), nil
	}

	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, Source(path), nil
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// UserConfigPath returns ~/.mines/config.yaml, or empty if the home
// directory is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// UserDir returns ~/.mines, or empty if the home directory is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines")
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
