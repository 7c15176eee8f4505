package clinic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/13harshit/ri-dianosic/motion"
)

const testPassword = "s3cret-pass"

func stub(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

func stubViews() ViewFuncs {
	return ViewFuncs{
		Home: func(p HomePage) templ.Component {
			field := ""
			if p.Form.Error != nil {
				field = p.Form.Error.Field
			}
			return stub("home stats=%d notice=%q error=%s", len(p.Stats), p.Notice, field)
		},
		Post:        func(p PostPage) templ.Component { return stub("post %s more=%d", p.Post.Title, len(p.More)) },
		NotFound:    func() templ.Component { return stub("not found") },
		ServerError: func() templ.Component { return stub("server error") },
		AdminLogin: func(showError bool, csrf string) templ.Component {
			return stub("login error=%v", showError)
		},
		AdminInbox: func(msgs []Message, notice, csrf string) templ.Component {
			return stub("inbox n=%d notice=%q", len(msgs), notice)
		},
	}
}

func newTestApp(t *testing.T) (*App, *motion.VirtualClock) {
	t.Helper()
	dir := t.TempDir()
	clock := motion.NewVirtualClock(time.Unix(1700000000, 0))
	app, err := New(SiteConfig{
		URL:           "https://ritu.example",
		DatabasePath:  filepath.Join(dir, "clinic.db"),
		StaticDir:     filepath.Join(dir, "public"),
		AdminPassword: testPassword,
		SessionSecret: "test-session-secret-0123456789",
		LogLevel:      "off",
	}, stubViews(), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := app.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, clock
}

// client drives an Echo instance and keeps cookies between requests.
type client struct {
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newClient(app *App) *client {
	return &client{e: app.Echo, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// post submits form with the CSRF token of the last response.
func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	if ck, ok := c.cookies["_csrf"]; ok && form.Get("_csrf") == "" {
		form.Set("_csrf", ck.Value)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return c.do(req)
}

func itoa(n int64) string {
	return fmt.Sprint(n)
}
