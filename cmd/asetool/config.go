package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-andiamo/swatchr"
	"github.com/rs/zerolog"
)

const envLogLevel = "ASETOOL_LOG_LEVEL"

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	CellWidth    int    `toml:"cell_width"`
	Height       int    `toml:"height"`
	StrictHeader bool   `toml:"strict_header"`
	Strict       bool   `toml:"strict"`
}

type config struct {
	LogLevel zerolog.Level
	Texture  swatchr.TextureOptions
	// StrictHeader fails on a header magic other than "ASEF"
	StrictHeader bool
	// Strict fails on any parse warning
	Strict bool
}

func defaultConfig() config {
	return config{
		LogLevel: zerolog.InfoLevel,
		Texture: swatchr.TextureOptions{
			CellWidth: 16,
			Height:    16,
		},
	}
}

// loadConfig loads the optional TOML config at path (empty path means defaults only),
// then applies environment overrides
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return config{}, fmt.Errorf("load asetool config: %w", err)
		}
		if meta.IsDefined("log_level") {
			lvl, err := parseLevel(raw.LogLevel)
			if err != nil {
				return config{}, err
			}
			cfg.LogLevel = lvl
		}
		if meta.IsDefined("cell_width") {
			if raw.CellWidth <= 0 {
				return config{}, fmt.Errorf("cell_width must be positive, got %d", raw.CellWidth)
			}
			cfg.Texture.CellWidth = raw.CellWidth
		}
		if meta.IsDefined("height") {
			if raw.Height <= 0 {
				return config{}, fmt.Errorf("height must be positive, got %d", raw.Height)
			}
			cfg.Texture.Height = raw.Height
		}
		if meta.IsDefined("strict_header") {
			cfg.StrictHeader = raw.StrictHeader
		}
		if meta.IsDefined("strict") {
			cfg.Strict = raw.Strict
		}
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		lvl, err := parseLevel(v)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log_level: %w", err)
	}
	return lvl, nil
}

func (c config) parseOptions(logger *zerolog.Logger) *swatchr.ParseOptions {
	return &swatchr.ParseOptions{
		Logger:                 logger,
		ErrorOnMalformedHeader: c.StrictHeader,
		ErrorOnWarning:         c.Strict,
	}
}
