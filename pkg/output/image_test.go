package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func createTestImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(0, 1, color.RGBA{12, 34, 56, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"render.png", FormatPNG, false},
		{"out/RENDER.PNG", FormatPNG, false},
		{"render.bmp", FormatBMP, false},
		{"render.tif", FormatTIFF, false},
		{"render.tiff", FormatTIFF, false},
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
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	decoders := map[string]func(*os.File) (image.Image, error){
		"render.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"render.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"render.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	img := createTestImage()

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := Save(path, img); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open saved file: %v", err)
			}
			defer file.Close()

			decoded, err := decode(file)
			if err != nil {
				t.Fatalf("Failed to decode saved file: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					wr, wg, wb, _ := img.At(x, y).RGBA()
					gr, gg, gb, _ := decoded.At(x, y).RGBA()
					if wr != gr || wg != gg || wb != gb {
						t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, img.At(x, y), decoded.At(x, y))
					}
				}
			}
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.jpg")
	if err := Save(path, createTestImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be created")
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, createTestImage(), Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
