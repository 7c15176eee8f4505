package clinic

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// Notices shown above the contact form after a redirect.
var contactNotices = map[string]string{
	"sent":    "Thank you! Your message has been sent. We'll get back to you shortly.",
	"limited": "You have sent several messages recently. Please try again in a few minutes.",
}

func (a *App) homePage(csrf string, form ContactForm, notice string) HomePage {
	posts := a.Catalog.Posts()
	return HomePage{
		Meta: PageMeta{
			Title:       a.Site.Name + " | " + a.Site.Tagline,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "website",
			Image:       a.Site.Hero.Image,
		},
		Site:    a.Site,
		Posts:   posts,
		Regions: a.initial,
		Stats:   StatViews(a.Site, a.initial),
		Active:  a.Site.Nav[0].ID,
		Form:    form,
		Notice:  notice,
		CSRF:    csrf,
		JSONLD:  ClinicJsonLD(a.Config, a.Site),
	}
}

func (a *App) postPage(p Post) PostPage {
	return PostPage{
		Meta: PageMeta{
			Title:       p.Title + " | " + a.Site.Name,
			Description: p.Excerpt,
			URL:         BuildURL(a.Config.URL, "blog", p.ID),
			OGType:      "article",
			Image:       p.Image,
		},
		Site:   a.Site,
		Post:   p,
		More:   a.Catalog.Others(p.ID, 2),
		JSONLD: ArticleJsonLD(p, a.Config),
	}
}

func (a *App) handleHome(c echo.Context) error {
	notice := contactNotices[c.QueryParam("msg")]
	return Render(c, a.Views.Home(a.homePage(csrfToken(c), ContactForm{}, notice)))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Catalog.Lookup(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Post(a.postPage(post)))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/#blog")
}

func (a *App) handleContact(c echo.Context) error {
	ip := c.RealIP()
	if !a.contactLimiter.Check(ip) {
		return c.Redirect(http.StatusSeeOther, contactRedirect("limited"))
	}
	msg := messageFromForm(c.FormValue)
	if _, err := a.Inbox.Save(msg); err != nil {
		if ve, ok := asValidation(err); ok {
			form := ContactForm{Message: msg, Error: ve}
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Home(a.homePage(csrfToken(c), form, "")))
		}
		return err
	}
	a.contactLimiter.Record(ip)
	c.Logger().Infof("contact message from %s", msg.Email)
	return c.Redirect(http.StatusSeeOther, contactRedirect("sent"))
}

func (a *App) handleManifest(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, a.manifestJSON)
}

func (a *App) handleMotionJS(c echo.Context) error {
	b, err := EmbeddedAssets.ReadFile("embedded/motion.js")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", b)
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeSitemap(c.Response())
}

func (a *App) handleFeed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeFeed(c.Response())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, a.robots())
}

func (a *App) robots() string {
	return "User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
