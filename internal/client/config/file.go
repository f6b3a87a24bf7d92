package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/dropwatch/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk form of Config.
type fileConfig struct {
	APIBase   string         `json:"api_base" yaml:"api_base"`
	Timeout   timex.Duration `json:"timeout" yaml:"timeout"`
	StateDB   string         `json:"state_db" yaml:"state_db"`
	LogFormat string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the non-empty values found in path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.APIBase != "" {
		cfg.APIBase = fc.APIBase
	}
	if fc.Timeout.Duration > 0 {
		cfg.Timeout = fc.Timeout.Duration
	}
	if fc.StateDB != "" {
		cfg.StateDB = fc.StateDB
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	return nil
}
