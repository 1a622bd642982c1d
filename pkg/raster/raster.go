// Package raster decodes logo assets for the composition pipeline.
//
// Logos may be PNG or JPEG rasters, SVG documents, or data: URIs carrying
// any of those. SVG sources are rasterized through the external
// rsvg-convert tool (from librsvg), mirroring how poster-quality SVG
// rendering is typically delegated rather than re-implemented.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/amadad/phantom/pkg/errors"
)

// DecodeLogo loads a logo from a file path or data: URI and returns the
// decoded raster image. Failures return ASSET_UNREADABLE; callers are
// expected to skip the logo layer rather than abort the render.
func DecodeLogo(src string) (image.Image, error) {
	if strings.HasPrefix(src, "data:") {
		return decodeDataURI(src)
	}

	if strings.EqualFold(filepath.Ext(src), ".svg") {
		svg, err := os.ReadFile(src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "read logo %s", src)
		}
		return rasterizeSVG(svg)
	}

	img, err := imaging.Open(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "decode logo %s", src)
	}
	return img, nil
}

// decodeDataURI decodes a data: URI of the form
// data:<mediatype>[;base64],<payload>.
func decodeDataURI(uri string) (image.Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errors.New(errors.ErrCodeAssetUnreadable, "malformed data URI logo")
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "decode base64 logo")
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "unescape data URI logo")
		}
		data = []byte(unescaped)
	}

	if strings.HasPrefix(meta, "image/svg") {
		return rasterizeSVG(data)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "decode data URI logo")
	}
	return img, nil
}

// rasterizeSVG converts SVG bytes to a raster image via rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func rasterizeSVG(svg []byte) (image.Image, error) {
	png, err := svgToPNG(svg)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "decode rasterized SVG logo")
	}
	return img, nil
}

// svgToPNG shells out to rsvg-convert for the SVG to PNG conversion.
func svgToPNG(svg []byte) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeAssetUnreadable,
			"SVG logos require librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.Command("rsvg-convert", "-f", "png")
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err,
			"rsvg-convert: %s", fmt.Sprintf("%.200s", errBuf.String()))
	}
	return out.Bytes(), nil
}
