package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "ocean")
	sc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 7e6, time.UTC) }

	want := filepath.Join("shots", "ocean_2024-03-09_14-05-06.007.png")
	if got := sc.Filename(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	sc.outputDir = ""
	if got := sc.Filename(); strings.Contains(got, string(filepath.Separator)) {
		t.Errorf("empty dir should give a bare name, got %s", got)
	}
}

func TestCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	sc := NewScreenshotCapture(dir, "ocean")

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	path, err := sc.Capture(img)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("written to %s, want dir %s", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds %v", decoded.Bounds())
	}
	r, g, b, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}
