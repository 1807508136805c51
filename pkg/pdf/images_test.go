package pdf

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestPNG writes a solid-color PNG of the given size and returns its path.
func createTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestProbeImage(t *testing.T) {
	dir := t.TempDir()
	good := createTestPNG(t, dir, "good.png", 4, 4)

	if err := probeImage(good); err != nil {
		t.Errorf("Expected valid image to probe cleanly, got %v", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := probeImage(bad); err == nil {
		t.Error("Expected an error for garbage image data")
	}

	if err := probeImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestPreparePageKeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	src := createTestPNG(t, dir, "small.png", 10, 20)

	page, err := preparePage(src, "letter", 150)
	if err != nil {
		t.Fatalf("preparePage failed: %v", err)
	}
	defer os.Remove(page)

	f, err := os.Open(page)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Failed to decode prepared page: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("Expected jpeg output, got %s", format)
	}
	if cfg.Width != 10 || cfg.Height != 20 {
		t.Errorf("Expected 10x20 output, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPreparePageDownscalesToBudget(t *testing.T) {
	dir := t.TempDir()
	// 10 DPI on letter gives an 85x110 pixel budget.
	src := createTestPNG(t, dir, "big.png", 850, 850)

	page, err := preparePage(src, "letter", 10)
	if err != nil {
		t.Fatalf("preparePage failed: %v", err)
	}
	defer os.Remove(page)

	f, err := os.Open(page)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 85 || cfg.Height != 85 {
		t.Errorf("Expected 85x85 output, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPreparePageNoFormatSkipsResize(t *testing.T) {
	dir := t.TempDir()
	src := createTestPNG(t, dir, "big.png", 900, 300)

	page, err := preparePage(src, "none", 10)
	if err != nil {
		t.Fatalf("preparePage failed: %v", err)
	}
	defer os.Remove(page)

	f, err := os.Open(page)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 900 || cfg.Height != 300 {
		t.Errorf("Expected 900x300 output, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestFit(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 50, 50))
	if got := fit(small, 100, 100); got != small {
		t.Error("Expected small images to pass through untouched")
	}

	wide := image.NewRGBA(image.Rect(0, 0, 400, 100))
	scaled := fit(wide, 100, 100)
	b := scaled.Bounds()
	if b.Dx() != 100 || b.Dy() != 25 {
		t.Errorf("Expected 100x25, got %dx%d", b.Dx(), b.Dy())
	}
}
