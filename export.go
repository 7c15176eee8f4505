package clinic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// Export renders the public site into dir as static files: the home page,
// one page per article, the 404 page, sitemap, feed, robots.txt and the
// motion assets. The inbox and admin pages are not exported.
func (a *App) Export(ctx context.Context, dir string) error {
	pages := []struct {
		path string
		cmp  templ.Component
	}{
		{"index.html", a.Views.Home(a.homePage("", ContactForm{}, ""))},
		{"404.html", a.Views.NotFound()},
	}
	for _, id := range a.Catalog.IDs() {
		p, err := a.Catalog.Lookup(id)
		if err != nil {
			return err
		}
		pages = append(pages, struct {
			path string
			cmp  templ.Component
		}{filepath.Join("blog", id, "index.html"), a.Views.Post(a.postPage(p))})
	}
	for _, pg := range pages {
		var buf bytes.Buffer
		if err := pg.cmp.Render(ctx, &buf); err != nil {
			return fmt.Errorf("clinic: render %s: %w", pg.path, err)
		}
		if err := writeExportFile(dir, pg.path, buf.Bytes()); err != nil {
			return err
		}
	}

	generated := []struct {
		path  string
		write func(io.Writer) error
	}{
		{"sitemap.xml", a.writeSitemap},
		{"feed.xml", a.writeFeed},
	}
	for _, g := range generated {
		var buf bytes.Buffer
		if err := g.write(&buf); err != nil {
			return fmt.Errorf("clinic: render %s: %w", g.path, err)
		}
		if err := writeExportFile(dir, g.path, buf.Bytes()); err != nil {
			return err
		}
	}

	if err := writeExportFile(dir, "robots.txt", []byte(a.robots())); err != nil {
		return err
	}
	if err := writeExportFile(dir, "motion.json", a.manifestJSON); err != nil {
		return err
	}
	if err := copyStatic(a.Config.StaticDir, filepath.Join(dir, "public")); err != nil {
		return err
	}
	js, err := EmbeddedAssets.ReadFile("embedded/motion.js")
	if err != nil {
		return err
	}
	return writeExportFile(dir, filepath.Join("public", "motion.js"), js)
}

// copyStatic mirrors the public asset directory. A missing src is not an
// error.
func copyStatic(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("clinic: export %s: %w", rel, err)
		}
		return writeExportFile(dst, rel, b)
	})
}

func writeExportFile(dir, name string, b []byte) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("clinic: export %s: %w", name, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("clinic: export %s: %w", name, err)
	}
	return nil
}
