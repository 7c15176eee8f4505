package clinic

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const jpegQuality = 80

// imageRequestLimit caps /img/ requests per client per minute.
const imageRequestLimit = 60

// ImageWidths are the widths the resizer serves.
var ImageWidths = []int{480, 800, 1200}

// ErrBadImageName is returned for names that leave the image directory.
var ErrBadImageName = errors.New("clinic: bad image name")

// ImageResizer serves downscaled JPEG copies of the site's images.
type ImageResizer struct {
	dir   string
	cache *ImageCache
}

// NewImageResizer serves images found under dir.
func NewImageResizer(dir string, cache *ImageCache) *ImageResizer {
	return &ImageResizer{dir: dir, cache: cache}
}

// SnapWidth returns the smallest allowed width at least w, or the largest
// allowed width when w exceeds them all.
func SnapWidth(w int) int {
	for _, allowed := range ImageWidths {
		if w <= allowed {
			return allowed
		}
	}
	return ImageWidths[len(ImageWidths)-1]
}

// Resize returns name scaled to the snapped width as JPEG. Images narrower
// than the target are re-encoded at their own size.
func (r *ImageResizer) Resize(name string, width int) ([]byte, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	width = SnapWidth(width)
	key := name + "@" + strconv.Itoa(width)
	return r.cache.GetOrLoad(key, func() ([]byte, error) {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("clinic: open image: %w", err)
		}
		defer f.Close()
		return resizeImage(f, width)
	})
}

func (r *ImageResizer) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", ErrBadImageName
	}
	return filepath.Join(r.dir, name), nil
}

func resizeImage(src io.Reader, width int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("clinic: decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("clinic: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Flush drops every cached resize and reports how many were held.
func (r *ImageResizer) Flush() int {
	n := r.cache.Len()
	r.cache.Invalidate()
	return n
}

func (a *App) handleImage(c echo.Context) error {
	if !a.imageLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many image requests")
	}
	width := ImageWidths[1]
	if v := c.QueryParam("w"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid width")
		}
		width = n
	}
	data, err := a.Images.Resize(c.Param("name"), width)
	switch {
	case errors.Is(err, ErrBadImageName):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image name")
	case errors.Is(err, ErrNotFound):
		return echo.ErrNotFound
	case err != nil:
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}
