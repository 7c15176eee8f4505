package clinic

import (
	"errors"
	"testing"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
)

func TestImageCacheExpires(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	c := NewImageCache(clock, time.Minute)
	c.Put("bg.jpg@800", []byte("jpeg"))

	if got, ok := c.Get("bg.jpg@800"); !ok || string(got) != "jpeg" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	clock.Advance(time.Minute)
	if _, ok := c.Get("bg.jpg@800"); ok {
		t.Error("entry should expire after the TTL")
	}
}

func TestImageCacheGetOrLoad(t *testing.T) {
	clock := motion.NewVirtualClock(time.Unix(0, 0))
	c := NewImageCache(clock, time.Hour)
	loads := 0
	load := func() ([]byte, error) {
		loads++
		return []byte("data"), nil
	}
	for i := 0; i < 3; i++ {
		if _, err := c.GetOrLoad("k", load); err != nil {
			t.Fatal(err)
		}
	}
	if loads != 1 {
		t.Errorf("loads = %d, want 1", loads)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrLoad("bad", func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1; failed loads are not cached", c.Len())
	}

	c.Invalidate()
	if c.Len() != 0 {
		t.Errorf("Len after Invalidate = %d", c.Len())
	}
}
