// Package config resolves runtime settings from defaults, an optional YAML
// file, IDEASCOUT_* environment variables and command-line overrides, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/csheth/ideascout/internal/ideas"
)

const envPrefix = "IDEASCOUT"

const (
	keyEndpoint = "endpoint"
	keyTimeout  = "timeout"
	keyLogFile  = "log_file"
	keyIndustry = "industry"
	keyTech     = "technology_focus"
)

// Config is the resolved configuration.
type Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Timeout         time.Duration `mapstructure:"timeout"`
	LogFile         string        `mapstructure:"log_file"`
	Industry        string        `mapstructure:"industry"`
	TechnologyFocus string        `mapstructure:"technology_focus"`
}

// Overrides carries explicitly set flags. Empty values are ignored.
type Overrides struct {
	Endpoint        string
	Timeout         time.Duration
	LogFile         string
	Industry        string
	TechnologyFocus string
}

// Load resolves the configuration. path may be empty; when it is, the
// IDEASCOUT_CONFIG variable is consulted.
func Load(path string, overrides Overrides) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyOverrides(v, overrides)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyEndpoint, ideas.DefaultEndpoint)
	v.SetDefault(keyTimeout, ideas.DefaultTimeout)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyIndustry, "")
	v.SetDefault(keyTech, "")
}

func applyOverrides(v *viper.Viper, o Overrides) {
	if o.Endpoint != "" {
		v.Set(keyEndpoint, o.Endpoint)
	}
	if o.Timeout > 0 {
		v.Set(keyTimeout, o.Timeout)
	}
	if o.LogFile != "" {
		v.Set(keyLogFile, o.LogFile)
	}
	if o.Industry != "" {
		v.Set(keyIndustry, o.Industry)
	}
	if o.TechnologyFocus != "" {
		v.Set(keyTech, o.TechnologyFocus)
	}
}

// Validate rejects settings the client cannot run with.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
