package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/amadad/phantom/pkg/errors"
)

// pngFixture returns encoded PNG bytes for a small solid image.
func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeLogoPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, pngFixture(t, 10, 6), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeLogo(path)
	if err != nil {
		t.Fatalf("DecodeLogo() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 10x6", b)
	}
}

func TestDecodeLogoMissingFile(t *testing.T) {
	_, err := DecodeLogo(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, errors.ErrCodeAssetUnreadable) {
		t.Errorf("DecodeLogo() = %v, want ASSET_UNREADABLE", err)
	}
}

func TestDecodeLogoDataURI(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngFixture(t, 4, 4))

	img, err := DecodeLogo(uri)
	if err != nil {
		t.Fatalf("DecodeLogo() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4", b)
	}
}

func TestDecodeLogoMalformedDataURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "no comma", uri: "data:image/png;base64"},
		{name: "bad base64", uri: "data:image/png;base64,@@@"},
		{name: "not an image", uri: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("junk"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLogo(tt.uri); !errors.Is(err, errors.ErrCodeAssetUnreadable) {
				t.Errorf("DecodeLogo(%q) = %v, want ASSET_UNREADABLE", tt.uri, err)
			}
		})
	}
}
