package clinic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
)

func writePNG(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestResizer(t *testing.T) (*ImageResizer, *ImageCache, string) {
	t.Helper()
	dir := t.TempDir()
	cache := NewImageCache(motion.NewVirtualClock(time.Unix(0, 0)), time.Hour)
	return NewImageResizer(dir, cache), cache, dir
}

func TestSnapWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 480},
		{480, 480},
		{481, 800},
		{1000, 1200},
		{5000, 1200},
	}
	for _, tt := range tests {
		if got := SnapWidth(tt.in); got != tt.want {
			t.Errorf("SnapWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResizeScalesDown(t *testing.T) {
	r, cache, dir := newTestResizer(t)
	writePNG(t, dir, "bg.png", 1600, 800)

	data, err := r.Resize("bg.png", 700)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("size = %dx%d, want 800x400", b.Dx(), b.Dy())
	}
	if cache.Len() != 1 {
		t.Errorf("cache Len = %d, want 1", cache.Len())
	}
}

func TestResizerFlush(t *testing.T) {
	r, cache, dir := newTestResizer(t)
	writePNG(t, dir, "bg.png", 1600, 800)
	for _, w := range []int{480, 800} {
		if _, err := r.Resize("bg.png", w); err != nil {
			t.Fatalf("Resize(%d): %v", w, err)
		}
	}
	if n := r.Flush(); n != 2 {
		t.Errorf("Flush = %d, want 2", n)
	}
	if cache.Len() != 0 {
		t.Errorf("cache Len after Flush = %d, want 0", cache.Len())
	}
}

func TestResizeNeverUpscales(t *testing.T) {
	r, _, dir := newTestResizer(t)
	writePNG(t, dir, "icon.png", 300, 200)

	data, err := r.Resize("icon.png", 1200)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 300 {
		t.Errorf("width = %d, want 300", img.Bounds().Dx())
	}
}

func TestResizeErrors(t *testing.T) {
	r, _, _ := newTestResizer(t)
	if _, err := r.Resize("missing.jpg", 800); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
	for _, name := range []string{"../secret.png", ".env", "a/b.png", ""} {
		if _, err := r.Resize(name, 800); !errors.Is(err, ErrBadImageName) {
			t.Errorf("Resize(%q) error = %v, want ErrBadImageName", name, err)
		}
	}
}
