package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amadad/phantom/pkg/errors"
)

func TestRegisterMissingFile(t *testing.T) {
	err := Register(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, errors.ErrCodeAssetUnreadable) {
		t.Errorf("Register() = %v, want ASSET_UNREADABLE", err)
	}
}

func TestRegisterInvalidData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Register(path)
	if !errors.Is(err, errors.ErrCodeAssetUnreadable) {
		t.Errorf("Register() = %v, want ASSET_UNREADABLE", err)
	}
	if _, ok := Registered(path); ok {
		t.Error("invalid font should not be registered")
	}
}

func TestFaceNilFont(t *testing.T) {
	face := Face(nil, 64)
	if face == nil {
		t.Fatal("Face(nil) returned nil; want bitmap fallback face")
	}
	// The bitmap face must still measure text.
	adv, ok := face.GlyphAdvance('M')
	if !ok || adv <= 0 {
		t.Errorf("GlyphAdvance('M') = %v, %v; want positive advance", adv, ok)
	}
}

func TestResolveEmptyPathUsesFallback(t *testing.T) {
	// Fallback may legitimately be nil on hosts without serif fonts; either
	// way Resolve must not panic and Face must produce a usable face.
	f := Resolve("")
	if face := Face(f, 32); face == nil {
		t.Error("Face(Resolve(\"\")) returned nil")
	}
}
