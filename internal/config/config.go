// Package config loads the runtime configuration of the backend.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

// SchedulerOff disables the background scheduler when used as SCHEDULER_SPEC.
const SchedulerOff = "off"

var (
	ErrAPIURLMissing     = errors.New("the API_URL environment variable must be set")
	ErrAuthSecretMissing = errors.New("the AUTH_SECRET environment variable must be set")
	ErrAuthSecretShort   = errors.New("AUTH_SECRET must be at least 32 characters long")
)

// Config holds the backend configuration.
type Config struct {
	APIURL           *url.URL
	DataDir          string
	AuthSecret       []byte
	TokenTTL         time.Duration
	SchedulerSpec    string
	DefaultCurrency  currency.Unit
	LogFormat        string
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration.
//
// Values are looked up in the environment first, then in a .env file in the
// working directory, then in the TOML file named by BUDGET_BUDDY_CONFIG.
// Keys not found anywhere use their defaults.
func Load() (Config, error) {
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("auth_token_ttl", "24h")
	v.SetDefault("scheduler_spec", "@hourly")
	v.SetDefault("default_currency", "EUR")
	v.SetDefault("log_format", "")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
	v.AutomaticEnv()

	if path := os.Getenv("BUDGET_BUDDY_CONFIG"); path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	return parse(v)
}

func parse(v *viper.Viper) (Config, error) {
	rawURL := v.GetString("api_url")
	if rawURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(strings.TrimSuffix(rawURL, "/"))
	if err != nil {
		return Config{}, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	secret := v.GetString("auth_secret")
	if secret == "" {
		return Config{}, ErrAuthSecretMissing
	}

	if len(secret) < 32 {
		return Config{}, ErrAuthSecretShort
	}

	ttl, err := time.ParseDuration(v.GetString("auth_token_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("AUTH_TOKEN_TTL is not a valid duration: %w", err)
	}

	unit, err := currency.ParseISO(v.GetString("default_currency"))
	if err != nil {
		return Config{}, fmt.Errorf("DEFAULT_CURRENCY is not a valid ISO 4217 code: %w", err)
	}

	return Config{
		APIURL:           apiURL,
		DataDir:          v.GetString("data_dir"),
		AuthSecret:       []byte(secret),
		TokenTTL:         ttl,
		SchedulerSpec:    strings.TrimSpace(v.GetString("scheduler_spec")),
		DefaultCurrency:  unit,
		LogFormat:        v.GetString("log_format"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
	}, nil
}

// SchedulerEnabled reports if due scheduled payments are processed in the background.
func (c Config) SchedulerEnabled() bool {
	return c.SchedulerSpec != "" && c.SchedulerSpec != SchedulerOff
}
