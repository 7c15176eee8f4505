package clinic

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// contentSecurityPolicy allows only same-origin scripts: motion.js is the
// single script the site runs.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' https: data:",
	"font-src 'self'",
	"connect-src 'self'",
	"frame-ancestors 'none'",
}, "; ")

// isAssetPath reports paths that are files rather than pages. They are
// served without a trailing slash.
func isAssetPath(p string) bool {
	switch p {
	case "/sitemap.xml", "/feed.xml", "/robots.txt", "/motion.json", "/favicon.svg":
		return true
	}
	return strings.HasPrefix(p, "/public/")
}

func (a *App) setupMiddleware() {
	e := a.Echo

	// Behind a reverse proxy on a private network the client address
	// comes from X-Forwarded-For; the limiters key on it.
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:     true,
		LogURI:        true,
		LogMethod:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogValuesFunc: logRequest,
	}))
	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		// JPEGs and other binary assets are already compressed.
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/img/") ||
				(strings.HasPrefix(p, "/public/") && !strings.HasSuffix(p, ".js") && !strings.HasSuffix(p, ".css"))
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		HSTSMaxAge:            31536000,
	}))

	e.Use(session.Middleware(a.sessionStore()))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		CookieHTTPOnly: true,
		ErrorHandler: func(err error, c echo.Context) error {
			c.Logger().Warnf("csrf rejected %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			// /blog redirects to the home page section itself.
			return isAssetPath(p) || p == "/blog"
		},
	}))
	e.Use(cacheControl)
}

func logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	if v.Status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s -> %d (%s) from %s", v.Method, v.URI, v.Status, v.Latency, v.RemoteIP)
		return nil
	}
	c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
	return nil
}

// cachePolicies are matched in order; the first rule whose test accepts the
// path sets Cache-Control.
var cachePolicies = []struct {
	match  func(p string) bool
	header string
}{
	// Pages with a CSRF token or private data.
	{func(p string) bool { return p == "/" || p == "/contact/" || strings.HasPrefix(p, "/admin") }, "no-store"},
	// Rebaked on every deploy without a content hash in the name.
	{func(p string) bool { return p == "/public/motion.js" || p == "/motion.json" }, "public, max-age=300"},
	{func(p string) bool { return strings.HasPrefix(p, "/public/") }, "public, max-age=31536000, immutable"},
	{func(p string) bool { return strings.HasPrefix(p, "/img/") }, "public, max-age=86400"},
	{func(p string) bool { return p == "/sitemap.xml" || p == "/feed.xml" || p == "/robots.txt" }, "public, max-age=86400"},
}

func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := c.Request().URL.Path
		value := "public, max-age=3600"
		for _, rule := range cachePolicies {
			if rule.match(p) {
				value = rule.header
				break
			}
		}
		c.Response().Header().Set("Cache-Control", value)
		return next(c)
	}
}

// csrfToken returns the token the CSRF middleware issued for this request.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
