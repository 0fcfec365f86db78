package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Postgres connection string (required)" required:"true"`

	// Application configuration
	Port           string   `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	AllowedOrigins []string `long:"allowed-origin" env:"ALLOWED_ORIGINS" env-delim:"," default:"chrome-extension://lcfhnmabjpdkbfdjhpgbehlgmkoepmlh" default:"moz-extension://linksense" description:"Browser extension origins allowed to call the API with credentials"`

	// External services
	OpenAIAPIKey  string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"OpenAI API key (required)" required:"true"`
	TokenSecret   string `long:"token-secret" env:"TOKEN_SECRET" description:"Secret used to verify session tokens and sign subscription tokens (required)" required:"true"`
	PostHogAPIKey string `long:"posthog-api-key" env:"POSTHOG_API_KEY" description:"PostHog project API key (telemetry disabled when unset)"`
	PostHogHost   string `long:"posthog-host" env:"POSTHOG_HOST" default:"https://us.i.posthog.com" description:"PostHog ingestion host"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"LinkSense/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DatabaseURL:    raw.DatabaseURL,
		Port:           raw.Port,
		AllowedOrigins: raw.AllowedOrigins,
		OpenAIAPIKey:   raw.OpenAIAPIKey,
		TokenSecret:    raw.TokenSecret,
		PostHogAPIKey:  raw.PostHogAPIKey,
		PostHogHost:    raw.PostHogHost,
		UserAgent:      raw.UserAgent,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
