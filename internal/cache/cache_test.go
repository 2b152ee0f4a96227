package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ppiankov/textlens/internal/model"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey("https://example.com/entries/en/Hello")
	b := CacheKey("https://example.com/entries/en/hello")
	if a != b {
		t.Errorf("expected case-insensitive keys, got %s and %s", a, b)
	}
	if c := CacheKey("https://example.com/entries/en/world"); c == a {
		t.Error("expected different words to produce different keys")
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	value := []byte(`[{"word":"hello"}]`)
	if err := c.Set("k", value, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value[0] = 'X' // caller mutation must not leak into the cache

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != `[{"word":"hello"}]` {
		t.Errorf("unexpected value: %s", got)
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("key", []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := c.Get("key")
	if !ok || string(got) != "payload" {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	if err := c.Set("old", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := c.Get("old"); ok {
		t.Error("expected expired entry to miss")
	}
	if _, err := os.Stat(filepath.Join(dir, "old.cache")); !os.IsNotExist(err) {
		t.Error("expected expired entry file to be removed")
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("expected no leftover temp files, got %v", matches)
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	if err := os.WriteFile(filepath.Join(dir, "bad.cache"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("expected corrupt entry to miss")
	}
}

func TestDiskCache_DeleteMissing(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	if err := c.Delete("nothing"); err != nil {
		t.Errorf("expected nil error deleting missing key, got %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	memory := NewMemoryCache(time.Minute, time.Minute)
	disk := NewDiskCache(t.TempDir(), time.Hour)
	layered := NewLayeredCache(memory, disk)

	_ = disk.Set("k", []byte("from-disk"), 0)

	got, ok := layered.Get("k")
	if !ok || string(got) != "from-disk" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if _, ok := memory.Get("k"); !ok {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := layered.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := layered.Get("k"); ok {
		t.Error("expected miss after Clear")
	}
}

func TestLayeredCache_DiskKeepsItsOwnTTL(t *testing.T) {
	memory := NewMemoryCache(time.Hour, time.Minute)
	disk := NewDiskCache(t.TempDir(), 7*24*time.Hour)
	layered := NewLayeredCache(memory, disk)

	if err := layered.Set("k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	raw, err := os.ReadFile(disk.path("k"))
	if err != nil {
		t.Fatalf("read disk entry: %v", err)
	}
	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		t.Fatalf("decode disk entry: %v", err)
	}

	if remaining := time.Until(entry.ExpiresAt); remaining < 7*24*time.Hour-time.Minute {
		t.Errorf("disk entry expires in %v, want the disk TTL of 168h", remaining)
	}
}

func TestNew(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Errorf("expected nil cache when disabled, got %T", c)
	}
	if _, ok := New(model.CacheConfig{Enabled: true, TTL: time.Minute}).(*MemoryCache); !ok {
		t.Error("expected memory cache without a directory")
	}
	if _, ok := New(model.CacheConfig{Enabled: true, TTL: time.Minute, Dir: t.TempDir()}).(*LayeredCache); !ok {
		t.Error("expected layered cache with a directory")
	}
}
