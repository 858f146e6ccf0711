// Package config loads the application's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the tunables the viewer reads at startup.
type Config struct {
	ThumbnailSize     int
	GridColumns       int
	GridGap           float64
	SlideshowInterval time.Duration
	CacheDir          string
}

const defaultConfigPath = "~/.config/lightbox/config.toml"

const (
	defaultThumbnailSize     = 256
	defaultGridColumns       = 4
	defaultGridGap           = 8.0
	defaultSlideshowInterval = 2 * time.Second
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ThumbnailSize:     defaultThumbnailSize,
		GridColumns:       defaultGridColumns,
		GridGap:           defaultGridGap,
		SlideshowInterval: defaultSlideshowInterval,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. A present-but-malformed file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ThumbnailSize        int     `toml:"thumbnail_size"`
		GridColumns          int     `toml:"grid_columns"`
		GridGap              float64 `toml:"grid_gap"`
		SlideshowIntervalSec float64 `toml:"slideshow_interval_sec"`
		CacheDir             string  `toml:"cache_dir"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.ThumbnailSize > 0 {
		cfg.ThumbnailSize = raw.ThumbnailSize
	}
	if raw.GridColumns > 0 {
		cfg.GridColumns = raw.GridColumns
	}
	if raw.GridGap > 0 {
		cfg.GridGap = raw.GridGap
	}
	if raw.SlideshowIntervalSec > 0 {
		cfg.SlideshowInterval = time.Duration(raw.SlideshowIntervalSec * float64(time.Second))
	}
	if dir := strings.TrimSpace(raw.CacheDir); dir != "" {
		cfg.CacheDir = mustExpand(dir)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
