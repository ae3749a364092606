package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hamlog/adif/adif"
)

// Config holds the tool's output defaults.
type Config struct {
	Pretty           bool
	LowercaseMarkers bool
	JSONIndent       string
}

func defaultConfig() Config {
	return Config{
		Pretty:     true,
		JSONIndent: "  ",
	}
}

func (c Config) emitOptions() adif.EmitOptions {
	return adif.EmitOptions{
		Pretty:           c.Pretty,
		LowercaseMarkers: c.LowercaseMarkers,
	}
}

type fileConfig struct {
	Pretty           bool   `toml:"pretty"`
	LowercaseMarkers bool   `toml:"lowercase_markers"`
	JSONIndent       string `toml:"json_indent"`
}

// loadConfig reads output defaults from a TOML file. Keys absent from the
// file keep their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load adif config: %w", err)
	}

	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("lowercase_markers") {
		cfg.LowercaseMarkers = raw.LowercaseMarkers
	}
	if meta.IsDefined("json_indent") {
		cfg.JSONIndent = raw.JSONIndent
	}
	return cfg, nil
}
