package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// testImage builds a 2x2 image with white, red, green and blue pixels
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

// loadImage decodes a saved image, detecting the format from its header
func loadImage(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func samePixels(t *testing.T, name string, got, want image.Image) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("%s: expected size %v, got %v", name, want.Bounds().Size(), got.Bounds().Size())
	}
	b := want.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gr, gg, gb, _ := got.At(got.Bounds().Min.X+x, got.Bounds().Min.Y+y).RGBA()
			wr, wg, wb, _ := want.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if gr>>8 != wr>>8 || gg>>8 != wg>>8 || gb>>8 != wb>>8 {
				t.Errorf("%s: pixel (%d,%d) expected (%d,%d,%d), got (%d,%d,%d)",
					name, x, y, wr>>8, wg>>8, wb>>8, gr>>8, gg>>8, gb>>8)
			}
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"render.png", PNG, false},
		{"out/RENDER.PNG", PNG, false},
		{"render.bmp", BMP, false},
		{"render.tif", TIFF, false},
		{"render.tiff", TIFF, false},
		{"render.jpg", "", true},
		{"render", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	for _, name := range []string{"a.png", "b.bmp", "c.tif", "nested/dir/d.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, img); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			samePixels(t, name, loadImage(t, path), img)
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "render.gif"), testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format("webp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %d bytes", buf.Len())
	}
}
