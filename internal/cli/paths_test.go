package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{name: "default", xdg: "", want: filepath.Join(home, ".cache", appName)},
		{name: "xdg", xdg: "/tmp/custom-cache", want: filepath.Join("/tmp/custom-cache", appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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

func TestNewCacheBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(envRedis, "")
	ctx := t.Context()

	c := New(os.Stderr, LogInfo)
	store, err := c.newCache(ctx)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if _, ok := store.(interface{ Dir() string }); !ok {
		t.Errorf("default backend = %T, want file cache", store)
	}

	c.noCache = true
	if store, _ = c.newCache(ctx); store == nil {
		t.Fatal("newCache() with --no-cache returned nil")
	}
	if _, ok := store.(interface{ Dir() string }); ok {
		t.Error("--no-cache still returned the file cache")
	}

	c.noCache = false
	c.redisURL = "not-a-url"
	if _, err := c.newCache(ctx); err == nil {
		t.Error("invalid redis url should fail")
	}
}
