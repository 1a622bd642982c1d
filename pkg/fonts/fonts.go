// Package fonts manages the process-wide font registry used by the renderer.
//
// Font files are parsed once per path and kept for the lifetime of the
// process: the registry is append-only and registration is idempotent, so
// concurrent first-use races are harmless (worst case one redundant parse).
// When a brand declares no font, or its font file is unreadable, rendering
// falls back to a generic serif face discovered on the host system, and as a
// last resort to a built-in bitmap face.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/amadad/phantom/pkg/errors"
)

// FallbackFamily is the generic family name reported for renders that could
// not load a brand font.
const FallbackFamily = "serif"

var (
	mu         sync.RWMutex
	registered = map[string]*truetype.Font{}
)

// Register parses the font file at path and adds it to the registry.
// Calling Register again for the same path is a no-op. Returns an
// ASSET_UNREADABLE error if the file cannot be read or parsed.
func Register(path string) error {
	mu.RLock()
	_, ok := registered[path]
	mu.RUnlock()
	if ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAssetUnreadable, err, "read font %s", path)
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAssetUnreadable, err, "parse font %s", path)
	}

	mu.Lock()
	registered[path] = fnt
	mu.Unlock()
	return nil
}

// Registered returns the parsed font for path, if it has been registered.
func Registered(path string) (*truetype.Font, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registered[path]
	return f, ok
}

// Resolve returns the font for path, registering it on first use, or the
// system serif fallback when path is empty or unreadable. The returned font
// may be nil if no TrueType font is available at all; Face handles that.
func Resolve(path string) *truetype.Font {
	if path != "" {
		if f, ok := Registered(path); ok {
			return f
		}
		if err := Register(path); err == nil {
			f, _ := Registered(path)
			return f
		}
	}
	return Fallback()
}

// fallbackCandidates are common serif font file names probed via the system
// font directories.
var fallbackCandidates = []string{
	"DejaVuSerif.ttf",
	"Georgia.ttf",
	"Times New Roman.ttf",
	"times.ttf",
	"LiberationSerif-Regular.ttf",
	"FreeSerif.ttf",
}

var (
	fallbackOnce sync.Once
	fallbackFont *truetype.Font
)

// Fallback returns a generic serif font discovered on the host system, or
// nil if none of the candidates can be found and parsed. The result is
// computed once and cached.
func Fallback() *truetype.Font {
	fallbackOnce.Do(func() {
		for _, name := range fallbackCandidates {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if f, err := truetype.Parse(data); err == nil {
				fallbackFont = f
				return
			}
		}
	})
	return fallbackFont
}

// Face builds a font face at the given pixel size. A nil font yields the
// built-in bitmap face so text rendering always has something to draw with.
func Face(f *truetype.Font, px float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
