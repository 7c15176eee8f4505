package clinic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	static := filepath.Join(dir, "public")
	if err := os.MkdirAll(filepath.Join(static, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(static, "images", "bg.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(SiteConfig{URL: "https://ritu.example", StaticDir: static, LogLevel: "off"}, stubViews())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := filepath.Join(dir, "dist")
	if err := app.Export(context.Background(), out); err != nil {
		t.Fatalf("Export: %v", err)
	}

	files := map[string]string{
		"index.html":           "home stats=4",
		"404.html":             "not found",
		"blog/1/index.html":    "post The Importance of Regular Health Checkups",
		"blog/2/index.html":    "post Understanding Your Blood Test Results",
		"blog/3/index.html":    "post ",
		"sitemap.xml":          "<urlset",
		"feed.xml":             "<rss",
		"robots.txt":           "Disallow: /admin/",
		"motion.json":          `"regions"`,
		"public/motion.js":     "IntersectionObserver",
		"public/images/bg.jpg": "jpeg",
	}
	for name, want := range files {
		b, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if !strings.Contains(string(b), want) {
			t.Errorf("%s does not contain %q", name, want)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "admin")); !os.IsNotExist(err) {
		t.Error("admin pages must not be exported")
	}
}
