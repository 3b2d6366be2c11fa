package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoadPriority(t *testing.T) {
	m := NewManager()
	m.AddSource("embedded", "shaders", fstest.MapFS{
		"ocean.vert": {Data: []byte("embedded vert")},
		"ocean.frag": {Data: []byte("embedded frag")},
	})
	m.AddSource("override", "", fstest.MapFS{
		"shaders/ocean.frag": {Data: []byte("override frag")},
		"sky.png":            {Data: []byte("png")},
	})

	tests := []struct {
		path string
		want string
	}{
		{"shaders/ocean.vert", "embedded vert"},
		{"shaders/ocean.frag", "override frag"},
		{"/shaders/ocean.frag", "override frag"},
		{"sky.png", "png"},
	}
	for _, tt := range tests {
		got, err := m.LoadText(tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager()
	m.AddSource("embedded", "shaders", fstest.MapFS{"ocean.vert": {Data: []byte("x")}})

	for _, p := range []string{"missing.png", "shaders/missing.frag", "other/ocean.vert"} {
		if _, err := m.Load(p); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", p, err)
		}
	}
}

func TestLoadCaches(t *testing.T) {
	m := NewManager()
	fsys := fstest.MapFS{"a.txt": {Data: []byte("first")}}
	m.AddSource("mem", "", fsys)

	if _, err := m.Load("a.txt"); err != nil {
		t.Fatal(err)
	}
	fsys["a.txt"] = &fstest.MapFile{Data: []byte("second")}

	got, err := m.LoadText("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "first" {
		t.Errorf("cached content expected, got %q", got)
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats: hits=%d misses=%d, want 1/1", hits, misses)
	}

	m.Close()
	if _, err := m.Load("a.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("closed manager should have no sources, got %v", err)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "shaders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shaders", "ocean.vert"), []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatal(err)
	}
	got, err := m.LoadText("shaders/ocean.vert")
	if err != nil {
		t.Fatal(err)
	}
	if got != "disk" {
		t.Errorf("got %q", got)
	}

	if err := m.AddDir(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
	if err := m.AddDir(filepath.Join(dir, "shaders", "ocean.vert")); err == nil {
		t.Error("expected error for a file")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("k"); ok {
		t.Error("empty cache should miss")
	}
	c.Set("k", []byte("v"))
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Errorf("got %q, %v", v, ok)
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats %d/%d", hits, misses)
	}
	c.Clear()
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("stats after clear %d/%d", hits, misses)
	}
}

func TestDefaultBackground(t *testing.T) {
	img := DefaultBackground(4, 16)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 16 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	// Rows are uniform and opaque.
	for y := 0; y < 16; y++ {
		c := img.RGBAAt(0, y)
		if c.A != 255 {
			t.Fatalf("row %d not opaque", y)
		}
		if img.RGBAAt(3, y) != c {
			t.Fatalf("row %d not uniform", y)
		}
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(0, 15) {
		t.Error("gradient should vary from top to bottom")
	}

	tiny := DefaultBackground(0, -1)
	if tiny.Bounds().Dx() != 1 || tiny.Bounds().Dy() != 1 {
		t.Errorf("degenerate size should give 1x1, got %v", tiny.Bounds())
	}
}
