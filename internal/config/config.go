// Package config loads Zenith settings from ~/.zenith/config.yaml, an
// explicit file, and ZENITH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range
// settings.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every environment override, so server.addr
// becomes ZENITH_SERVER_ADDR.
const EnvPrefix = "ZENITH"

// MaxFPS bounds the dashboard tick rate.
const MaxFPS = 60

type Config struct {
	Server ServerConfig `mapstructure:"server" json:"server"`
	TUI    TUIConfig    `mapstructure:"tui" json:"tui"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" json:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
}

type TUIConfig struct {
	FPS       int  `mapstructure:"fps" json:"fps"`
	Animate   bool `mapstructure:"animate" json:"animate"`
	AltScreen bool `mapstructure:"alt_screen" json:"alt_screen"`
	Mouse     bool `mapstructure:"mouse" json:"mouse"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	File        string `mapstructure:"file" json:"file"`
	Development bool   `mapstructure:"development" json:"development"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		TUI: TUIConfig{
			FPS:       12,
			Animate:   true,
			AltScreen: true,
			Mouse:     true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("tui.fps", d.TUI.FPS)
	v.SetDefault("tui.animate", d.TUI.Animate)
	v.SetDefault("tui.alt_screen", d.TUI.AltScreen)
	v.SetDefault("tui.mouse", d.TUI.Mouse)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.development", d.Log.Development)
}

// Dir returns the per-user settings directory, ~/.zenith.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".zenith"), nil
}

// Load reads the config. With an empty override it looks for
// config.yaml in Dir and falls back to defaults when none exists; an
// explicit override must exist. Environment variables win over both.
func Load(override string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override != "" {
		v.SetConfigFile(override)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", override, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if strings.HasPrefix(cfg.Log.File, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Log.File = filepath.Join(home, cfg.Log.File[2:])
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and formats. Every failure wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.TUI.FPS < 1 || c.TUI.FPS > MaxFPS {
		return fmt.Errorf("%w: tui.fps %d out of range 1-%d", ErrInvalidConfig, c.TUI.FPS, MaxFPS)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	_, portStr, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		return fmt.Errorf("%w: server.addr %q: %v", ErrInvalidConfig, c.Server.Addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("%w: port %q in server.addr %q", ErrInvalidConfig, portStr, c.Server.Addr)
	}

	if c.Server.ReadTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative server timeout", ErrInvalidConfig)
	}
	return nil
}
