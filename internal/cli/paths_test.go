package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/raagpile/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"xdg cache home", "/tmp/custom-cache", filepath.Join("/tmp/custom-cache", "raagpile")},
		{"home fallback", "", filepath.Join(home, ".cache", "raagpile")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv("XDG_CACHE_HOME", tt.xdg)

			dir, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if dir != tt.want {
				t.Errorf("cacheDir() = %q, want %q", dir, tt.want)
			}
		})
	}
}

func TestNewCacheBackend(t *testing.T) {
	dir := isolate(t)
	ctx := context.Background()

	c := &CLI{Logger: newLogger(io.Discard, LogInfo), noCache: true}
	store, err := c.newCache(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(cache.NullCache); !ok {
		t.Errorf("--no-cache backend = %T, want cache.NullCache", store)
	}

	c.noCache = false
	store, err = c.newCache(ctx)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := store.(*cache.FileCache)
	if !ok {
		t.Fatalf("default backend = %T, want *cache.FileCache", store)
	}
	if fc.Dir() != dir {
		t.Errorf("file cache dir = %q, want %q", fc.Dir(), dir)
	}

	c.redisURL = "not-a-redis-url"
	if _, err := c.newCache(ctx); err == nil {
		t.Error("newCache with a malformed Redis URL should fail")
	}
}
