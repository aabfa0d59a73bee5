// SPDX-License-Identifier: MIT
package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a solid w x h PNG to path
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{250, 204, 21, 255})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func TestGenerateThumbnail(t *testing.T) {
	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "light.png")
	writePNG(t, srcPath, 100, 100)

	dstPath := filepath.Join(tmpDir, "thumbs", "light.png")
	if err := GenerateThumbnail(srcPath, dstPath, 50); err != nil {
		t.Fatalf("GenerateThumbnail failed: %v", err)
	}

	bounds := decodeFile(t, dstPath).Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("Expected thumbnail 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateThumbnailKeepsAspectRatio(t *testing.T) {
	tmpDir := t.TempDir()
	srcPath := filepath.Join(tmpDir, "wide.png")
	writePNG(t, srcPath, 200, 100)

	dstPath := filepath.Join(tmpDir, "wide-thumb.png")
	if err := GenerateThumbnail(srcPath, dstPath, 100); err != nil {
		t.Fatalf("GenerateThumbnail failed: %v", err)
	}

	img := decodeFile(t, dstPath)

	// Letterboxed: top row transparent, middle row painted
	if _, _, _, a := img.At(50, 0).RGBA(); a != 0 {
		t.Errorf("expected transparent letterbox, got alpha %d", a)
	}
	if _, _, _, a := img.At(50, 50).RGBA(); a == 0 {
		t.Error("expected image content in the middle")
	}
}

func TestGenerateThumbnailErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if err := GenerateThumbnail(filepath.Join(tmpDir, "nope.png"), filepath.Join(tmpDir, "out.png"), 10); err == nil {
		t.Error("expected error for missing source")
	}

	bad := filepath.Join(tmpDir, "bad.png")
	os.WriteFile(bad, []byte("not an image"), 0644)
	if err := GenerateThumbnail(bad, filepath.Join(tmpDir, "out.png"), 10); err == nil {
		t.Error("expected error for undecodable source")
	}

	if err := GenerateThumbnail(bad, filepath.Join(tmpDir, "out.png"), 0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		src  image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 200, 100), image.Rect(0, 25, 100, 75)},
		{image.Rect(0, 0, 100, 200), image.Rect(25, 0, 75, 100)},
		{image.Rect(0, 0, 10, 10), image.Rect(0, 0, 100, 100)},
	}

	for _, tt := range tests {
		if got := fitRect(tt.src, 100); got != tt.want {
			t.Errorf("fitRect(%v) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestThumbnailRef(t *testing.T) {
	if got := ThumbnailRef("/images/hs-60.webp"); got != "/images/thumbs/hs-60.png" {
		t.Errorf("unexpected thumbnail ref %s", got)
	}
	if got := ThumbnailRef("https://example.com/a.png"); got != "" {
		t.Errorf("expected empty ref for remote image, got %s", got)
	}
}

func TestGenerateThumbnails(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "hs-60.png"), 40, 80)

	r := NewResolver(dir)
	n, missing, err := r.GenerateThumbnails([]string{"/images/hs-60.png", "/images/hs-90.png"})
	if err != nil {
		t.Fatalf("GenerateThumbnails failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 thumbnail, got %d", n)
	}
	if len(missing) != 1 || missing[0] != "/images/hs-90.png" {
		t.Errorf("unexpected missing list %v", missing)
	}

	if r.Card("/images/hs-60.png") != "/images/thumbs/hs-60.png" {
		t.Errorf("card should prefer thumbnail, got %s", r.Card("/images/hs-60.png"))
	}
	if r.Card("/images/hs-90.png") != "/images/hs-90.png" {
		t.Error("card without thumbnail should use original")
	}
}
