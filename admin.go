package clinic

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName   = "clinic_admin"
	sessionMaxAge = 12 * 60 * 60
	sessionAuthed = "authenticated"
)

// Notices shown on the inbox after an action.
const (
	noticeDeleted        = "Message deleted."
	noticeAlreadyDeleted = "Message already deleted."
)

func (a *App) sessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/admin/",
		HttpOnly: true,
		MaxAge:   sessionMaxAge,
		SameSite: http.SameSiteStrictMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// isAdmin reports whether the request carries a signed-in admin session.
func isAdmin(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values[sessionAuthed].(bool)
	return ok
}

// saveAdminSession signs the admin in, or out when signedIn is false.
func saveAdminSession(c echo.Context, signedIn bool) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	if signedIn {
		sess.Values[sessionAuthed] = true
	} else {
		delete(sess.Values, sessionAuthed)
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// requireAdmin sends visitors without a session to the login form.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		return next(c)
	}
}

func (a *App) handleAdmin(c echo.Context) error {
	if !isAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, csrfToken(c)))
	}
	return a.renderInbox(c, http.StatusOK, "")
}

// handleAdminLogin checks the password. Failed attempts count against the
// client address; a success clears them.
func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		c.Logger().Warnf("admin login throttled for %s", ip)
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	given := []byte(c.FormValue("password"))
	if subtle.ConstantTimeCompare(given, []byte(a.Config.AdminPassword)) != 1 {
		a.loginLimiter.Record(ip)
		c.Logger().Warnf("failed admin login from %s", ip)
		return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(true, csrfToken(c)))
	}
	a.loginLimiter.Reset(ip)
	if err := saveAdminSession(c, true); err != nil {
		return err
	}
	c.Logger().Infof("admin signed in from %s", ip)
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func handleAdminLogout(c echo.Context) error {
	if err := saveAdminSession(c, false); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminDeleteMessage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}
	m, err := a.Inbox.Get(id)
	if errors.Is(err, ErrNotFound) {
		return a.renderInbox(c, http.StatusOK, noticeAlreadyDeleted)
	}
	if err != nil {
		return err
	}
	if err := a.Inbox.Delete(id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	c.Logger().Infof("deleted message %d from %s", m.ID, m.Email)
	return a.renderInbox(c, http.StatusOK, noticeDeleted)
}

func (a *App) renderInbox(c echo.Context, code int, notice string) error {
	msgs, err := a.Inbox.List()
	if err != nil {
		return err
	}
	return RenderStatus(c, code, a.Views.AdminInbox(msgs, notice, csrfToken(c)))
}
