package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API  APIConfig
	Auth AuthConfig
	UI   UIConfig
	Log  LogConfig
	Demo DemoConfig
}

// APIConfig holds backend settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout time.Duration
}

// AuthConfig holds the bearer token used at start-up, if any.
type AuthConfig struct {
	Token    string
	TokenEnv string `mapstructure:"token_env"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	FlashTTL       time.Duration `mapstructure:"flash_ttl"`
}

// LogConfig controls the slog file logger.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

// DemoConfig controls the in-process mock backend.
type DemoConfig struct {
	Addr   string
	Secret string
}

// Load reads configuration from .env, file and env. Env var overrides use prefix DELIVERUS_.
func Load() (Config, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	home := os.Getenv("HOME")

	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("auth.token", "")
	v.SetDefault("auth.token_env", "DELIVERUS_TOKEN")
	v.SetDefault("ui.currency_symbol", "€")
	v.SetDefault("ui.flash_ttl", 4*time.Second)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "deliverus-owner", "deliverus-owner.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("demo.addr", "127.0.0.1:0")
	v.SetDefault("demo.secret", "deliverus-demo-secret")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DELIVERUS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "deliverus-owner"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DELIVERUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the mobile app reads API_BASE_URL from .env; honour it too
	if err := v.BindEnv("api.base_url", "DELIVERUS_API_BASE_URL", "API_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	return c, nil
}

// ResolveToken returns the start-up bearer token: the configured env var first, then the file value.
func ResolveToken(cfg Config) string {
	if env := strings.TrimSpace(cfg.Auth.TokenEnv); env != "" {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return strings.TrimSpace(cfg.Auth.Token)
}
