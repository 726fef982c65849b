// Package config loads runtime settings from defaults, an optional YAML file,
// a .env file and DTUCAL_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DTUCAL_SERVER_PORT.
const EnvPrefix = "DTUCAL"

// A calendar request makes up to two sequential upstream fetches (search, then
// detail). The write timeout must outlast both, plus time to render the reply.
const (
	upstreamCallsPerRequest = 2
	writeTimeoutMargin      = 5 * time.Second
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         CORSConfig    `mapstructure:"cors"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// UpstreamConfig describes the scraped registration site.
type UpstreamConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LogConfig selects the log level and encoder ("json" or "console").
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. An empty path searches ./config and . for config.yaml;
// a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.applyDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without reading files or the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	cfg.applyDerived()
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.read_timeout", "15s")
	// Zero derives the value from upstream.timeout; see applyDerived.
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("upstream.base_url", "https://courses.duytan.edu.vn")
	v.SetDefault("upstream.timeout", "20s")
	v.SetDefault("upstream.user_agent", "dtu-calendar/1.0 (github.com/pfrederiksen/dtu-calendar)")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// applyDerived fills settings whose defaults depend on other settings.
func (c *Config) applyDerived() {
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = upstreamCallsPerRequest*c.Upstream.Timeout + writeTimeoutMargin
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("invalid config: upstream.timeout must be positive")
	}
	if budget := upstreamCallsPerRequest * c.Upstream.Timeout; c.Server.WriteTimeout <= budget {
		return fmt.Errorf("invalid config: server.write_timeout (%s) must exceed %d x upstream.timeout (%s)",
			c.Server.WriteTimeout, upstreamCallsPerRequest, budget)
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("invalid config: upstream.base_url is required")
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid config: upstream.base_url %q is not an absolute URL", c.Upstream.BaseURL)
	}
	return nil
}
