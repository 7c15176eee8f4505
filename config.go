package clinic

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/13harshit/ri-dianosic/motion"
)

// SiteConfig holds all configuration for the clinic site. Fields can be
// set directly or read from the environment with LoadConfig.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`        // default "Ritu Diagnostic"
	URL         string `env:"SITE_URL"`         // canonical URL, default "http://localhost:3000"
	Description string `env:"SITE_DESCRIPTION"` // meta and RSS description

	Addr         string `env:"ADDR"`          // listen address, default ":3000"
	DatabasePath string `env:"DATABASE_PATH"` // contact inbox, default "data/clinic.db"
	StaticDir    string `env:"STATIC_DIR"`    // public assets, default "public"

	AdminPassword string `env:"ADMIN_PASSWORD"`       // required to serve
	SessionSecret string `env:"ADMIN_SESSION_SECRET"` // required to serve
	CookieSecure  bool   `env:"COOKIE_SECURE"`        // set true behind HTTPS
	H2C           bool   `env:"H2C"`                  // cleartext HTTP/2 for a proxy that speaks it

	ImageCacheTTL time.Duration `env:"IMAGE_CACHE_TTL"` // resized image TTL, default 1h
	LogLevel      string        `env:"LOG_LEVEL"`       // debug, info, warn, error, off
}

// LoadConfig reads SiteConfig from the environment and applies defaults.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Ritu Diagnostic"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Accurate, reliable and timely diagnostic services in New Delhi."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/clinic.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ImageCacheTTL == 0 {
		c.ImageCacheTTL = time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for public assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithClock sets the clock used for rate limiting and image cache expiry.
func WithClock(c motion.Clock) Option {
	return func(a *App) {
		a.clock = c
	}
}

// WithCatalog replaces the embedded article catalog.
func WithCatalog(c *Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}
