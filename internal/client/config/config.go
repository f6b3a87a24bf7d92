package config

import (
	"time"

	"github.com/dmitrijs2005/dropwatch/internal/flagx"
)

// Log formats understood by the CLI.
const (
	LogFormatText = "text"
	LogFormatZap  = "zap"
)

// Config holds runtime settings for the dropwatch CLI.
type Config struct {
	// APIBase is the API root every endpoint is appended to.
	APIBase string
	// Timeout bounds a single request.
	Timeout time.Duration
	// StateDB is the SQLite file the session is kept in.
	StateDB   string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBase = "http://localhost:5000/api"
	c.Timeout = 30 * time.Second
	c.StateDB = "dropwatch.db"
	c.LogFormat = LogFormatText
}

// LoadConfig builds a Config from defaults and the config file named in
// args, if any. Flags are applied afterwards by the command that owns them
// (see BindFlags).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
