package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// UpstreamTimeout bounds every outbound call to PayPal, the content backend and the front end.
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	// SellConcurrency caps the per-sale fan-out. 0 means unbounded.
	SellConcurrency int `env:"SELL_CONCURRENCY" envDefault:"8"`

	Paypal   Paypal   `envPrefix:"PAYPAL_"`
	Content  Content  `envPrefix:"CONTENT_"`
	Frontend Frontend `envPrefix:"FRONTEND_"`
}

type Paypal struct {
	BaseApiURL   string `env:"BASE_API_URL,required,notEmpty"`
	ClientID     string `env:"CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"CLIENT_SECRET,required,notEmpty"`
	// RequireCompleted rejects sales whose verified order is not COMPLETED.
	RequireCompleted bool `env:"REQUIRE_COMPLETED" envDefault:"true"`
}

// Content is the headless CMS holding fossils and categories.
type Content struct {
	BaseApiURL string `env:"API_URL,required,notEmpty"`
	Token      string `env:"API_TOKEN,required,notEmpty"`
}

// Frontend is the Next.js site serving the cached pages.
type Frontend struct {
	BaseURL          string `env:"URL,required,notEmpty"`
	RevalidateSecret string `env:"REVALIDATE_SECRET,required,notEmpty"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host           string   `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port           string   `env:"HTTP_PORT" envDefault:"1338"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:1337,https://evolution2art.com,https://www.evolution2art.com,https://new.evolution2art.com,https://backend.evolution2art.com"`
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, c.HTTP.Port)
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	urls := map[string]string{
		"PAYPAL_BASE_API_URL": c.Paypal.BaseApiURL,
		"CONTENT_API_URL":     c.Content.BaseApiURL,
		"FRONTEND_URL":        c.Frontend.BaseURL,
	}
	for name, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute url, got %q", name, raw)
		}
	}
	if c.SellConcurrency < 0 {
		return fmt.Errorf("SELL_CONCURRENCY must not be negative, got %d", c.SellConcurrency)
	}
	return nil
}
