package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs with the current values
// of c as defaults, so parsing fs overrides only what was given.
//
// The config file flag is registered for help and validation only; the
// file itself is read by LoadConfig before flags are parsed.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.APIBase, "api", "a", c.APIBase, "base URL of the dashboard API")
	fs.VarP((*seconds)(&c.Timeout), "timeout", "t", "request timeout in seconds")
	fs.StringVarP(&c.StateDB, "state-db", "d", c.StateDB, "path of the local session database")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output: text or zap")
	fs.StringP("config", "c", "", "path to a JSON or YAML config file")
}

// Validate reports settings the CLI cannot run with.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api base must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatZap:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// seconds is a time.Duration flag given as whole seconds.
type seconds time.Duration

func (s *seconds) String() string {
	return strconv.Itoa(int(time.Duration(*s).Seconds()))
}

func (s *seconds) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("timeout %q: not a number of seconds", v)
	}
	*s = seconds(time.Duration(n) * time.Second)
	return nil
}

func (s *seconds) Type() string {
	return "seconds"
}
