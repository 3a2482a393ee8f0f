// Package config holds the application's configuration settings.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig is read from the environment. A .env file, when present, is
// loaded into the environment before this by cmd/api.
type AppConfig struct {
	HTTP     HTTPConfig
	Stripe   StripeConfig
	Log      LogConfig
	Site     SiteConfig
	Database DatabaseConfig
	R2       R2Config
}

type HTTPConfig struct {
	Port string `env:"PORT" env-default:"8080"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
	// APIURL overrides the Stripe API base, e.g. for a local mock.
	APIURL     string `env:"STRIPE_API_URL"`
	SuccessURL string `env:"SUCCESS_URL" env-default:"https://mamonis.studio/success"`
	CancelURL  string `env:"CANCEL_URL" env-default:"https://mamonis.studio/cancel"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type SiteConfig struct {
	APIEnabled bool   `env:"SITE_API_ENABLED" env-default:"false"`
	URL        string `env:"SITE_URL" env-default:"https://mamonis.studio"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

type R2Config struct {
	AccountID       string `env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	Bucket          string `env:"R2_BUCKET"`
	PublicURL       string `env:"R2_PUBLIC_URL"`
}

// Enabled reports whether enough R2 settings are present to sync galleries.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

func LoadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from env: %w", err)
	}
	return &cfg, nil
}
