package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat converts a CLI value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown config format %q (want yaml or toml)", s)
	}
}

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data in the given format on top of the built-in defaults,
// so a file only needs to list the values it changes.
func Decode(data []byte, format Format) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg BreakoutConfig, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Load loads the breakout configuration and validates it.
// Search order: customPath -> ~/.breakout/config.{yaml,yml,toml} ->
// ./configs/breakout.{yaml,yml,toml} -> embedded default.
// A customPath that cannot be read or parsed is an error; the other locations
// are skipped when missing or broken.
func Load(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := Decode(defaultBreakoutYAML, FormatYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil
	}
	return cfg, cfg.Validate()
}

func loadFile(path string) (BreakoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	exts := []string{".yaml", ".yml", ".toml"}
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(home, ".breakout", "config"+ext))
		}
	}
	for _, ext := range exts {
		paths = append(paths, filepath.Join("configs", "breakout"+ext))
	}
	return paths
}
