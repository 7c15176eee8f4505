// Package clinic serves the Ritu Diagnostic website: an animated single
// page, Health Insights articles, a contact inbox and a small admin area,
// built with Echo and templ.
//
// Templates are supplied through ViewFuncs so the page markup lives in its
// own package; clinic handles content loading, routing, middleware, the
// contact inbox and the motion manifest the browser player replays.
package clinic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/net/http2"

	"github.com/13harshit/ri-dianosic/motion"
)

// ViewFuncs holds the templ components the app renders pages with.
type ViewFuncs struct {
	Home        func(page HomePage) templ.Component
	Post        func(page PostPage) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
	AdminLogin  func(showError bool, csrfToken string) templ.Component
	AdminInbox  func(messages []Message, notice string, csrfToken string) templ.Component
}

// App wires together content, the inbox, handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Site    Site
	Catalog *Catalog
	Inbox   *Inbox
	Images  *ImageResizer
	Views   ViewFuncs

	clock          motion.Clock
	manifest       motion.Manifest
	manifestJSON   []byte
	initial        Regions
	contactLimiter *Limiter
	loginLimiter   *Limiter
	imageLimiter   *Limiter
	customRoutes   []func(*App)
	ready          bool
}

// New creates an App from cfg and views. It loads the embedded site
// content and article catalog and bakes the motion manifest.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		clock:  motion.SystemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(ParseLogLevel(a.Config.LogLevel))

	site, err := LoadSite(Content, "content/site.yaml")
	if err != nil {
		return nil, err
	}
	a.Site = site
	if a.Config.Name != "" {
		a.Site.Name = a.Config.Name
	}
	if a.Catalog == nil {
		if a.Catalog, err = LoadCatalog(Content, "content/posts.yaml"); err != nil {
			return nil, err
		}
	}

	posts := a.Catalog.Posts()
	a.manifest = BuildManifest(a.Site, posts)
	if a.manifestJSON, err = json.Marshal(a.manifest); err != nil {
		return nil, fmt.Errorf("clinic: encode manifest: %w", err)
	}
	a.initial = InitialRegions(a.Site, posts)

	a.Images = NewImageResizer(filepath.Join(a.Config.StaticDir, "images"), NewImageCache(a.clock, a.Config.ImageCacheTTL))
	return a, nil
}

// Manifest returns the baked motion manifest of the home page.
func (a *App) Manifest() motion.Manifest {
	return a.manifest
}

// Setup opens the inbox and registers middleware and routes. Start calls
// it; tests call it directly to drive a.Echo without listening.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.AdminPassword == "" {
		return errors.New("clinic: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return errors.New("clinic: SessionSecret is required")
	}

	inbox, err := OpenInbox(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("clinic: init inbox: %w", err)
	}
	a.Inbox = inbox

	a.contactLimiter = NewLimiter(a.clock, 5, 10*time.Minute)
	a.loginLimiter = NewLimiter(a.clock, 5, time.Minute)
	a.imageLimiter = NewLimiter(a.clock, imageRequestLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s on %s (h2c=%v)", a.Config.URL, a.Config.Addr, a.Config.H2C)
	var err error
	if a.Config.H2C {
		err = a.Echo.StartH2CServer(a.Config.Addr, &http2.Server{MaxConcurrentStreams: 250})
	} else {
		err = a.Echo.Start(a.Config.Addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/motion.js", a.handleMotionJS)
	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/motion.json", a.handleManifest)
	e.GET("/img/:name/", a.handleImage)

	e.GET("/", a.handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/", handleBlogRedirect)
	e.GET("/blog/:id/", a.handlePost)
	e.POST("/contact/", a.handleContact)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.DELETE("/admin/message/:id/", a.handleAdminDeleteMessage, requireAdmin)
}

// Close releases the inbox and stops background sweeps.
func (a *App) Close() error {
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.imageLimiter != nil {
		a.imageLimiter.Stop()
	}
	if a.Inbox != nil {
		return a.Inbox.Close()
	}
	return nil
}

// ParseLogLevel maps a LOG_LEVEL value to a gommon level. Unknown values
// mean INFO.
func ParseLogLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
