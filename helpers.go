package clinic

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absURL resolves a site-relative asset path against base.
func absURL(base, p string) string {
	if p == "" || strings.Contains(p, "://") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

// ClinicJsonLD returns a schema.org MedicalClinic description of the site.
func ClinicJsonLD(cfg SiteConfig, site Site) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "MedicalClinic",
		"name":        site.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	for _, ch := range site.Contact.Channels {
		if len(ch.Lines) == 0 {
			continue
		}
		switch ch.Icon {
		case "phone":
			data["telephone"] = ch.Lines[0]
		case "mail":
			data["email"] = ch.Lines[0]
		case "map-pin":
			data["address"] = strings.Join(ch.Lines, ", ")
		}
	}
	if len(site.Services.Items) > 0 {
		var names []string
		for _, s := range site.Services.Items {
			names = append(names, s.Title)
		}
		data["availableService"] = names
	}
	return marshalJSONLD(data)
}

// ArticleJsonLD returns a schema.org BlogPosting description of p.
func ArticleJsonLD(p Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", p.ID)
	data := map[string]interface{}{
		"@context":       "https://schema.org",
		"@type":          "BlogPosting",
		"headline":       p.Title,
		"description":    p.Excerpt,
		"url":            postURL,
		"articleSection": p.Category,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"publisher": map[string]string{
			"@type": "MedicalOrganization",
			"name":  cfg.Name,
		},
	}
	if t := p.Published(); !t.IsZero() {
		data["datePublished"] = t.Format(time.DateOnly)
	}
	if p.Image != "" {
		data["image"] = absURL(cfg.URL, p.Image)
	}
	return marshalJSONLD(data)
}

func marshalJSONLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
