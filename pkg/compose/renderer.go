package compose

import (
	"bytes"
	"image"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/amadad/phantom/pkg/brand"
	"github.com/amadad/phantom/pkg/errors"
	"github.com/amadad/phantom/pkg/fonts"
	"github.com/amadad/phantom/pkg/raster"
)

// AspectRatios is the public table of supported aspect-ratio keys and their
// canvas dimensions in pixels.
var AspectRatios = map[string][2]int{
	"square":    {1080, 1080},
	"portrait":  {1080, 1350},
	"story":     {1080, 1920},
	"landscape": {1200, 675},
	"wide":      {1200, 627},
}

// Request describes one poster render. Everything here is consumed within a
// single Render call; requests are independent and safe to fan out across
// goroutines.
type Request struct {
	Brand        *brand.Brand
	Headline     string
	Eyebrow      string // optional accent line above the headline
	Caption      string // optional subtext below the headline
	ContentImage []byte // optional raster bytes; nil forces a type-only treatment
	Ratio        string // aspect-ratio key from AspectRatios
	LogoPath     string // caller-supplied logo, used when the brand has none
	NoLogo       bool   // suppress the logo layer unconditionally
	Topic        string
	Seed         string
}

// Renderer orchestrates the frame pipeline: plan, layout, the four paint
// layers in fixed z-order, and PNG encoding. It holds no per-render state.
type Renderer struct {
	logger *log.Logger
}

// NewRenderer creates a renderer logging asset warnings to logger.
// A nil logger falls back to the default logger.
func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{logger: logger}
}

// Render composes a poster and returns the encoded PNG bytes.
//
// Asset-level failures (unreadable logo or font, undecodable content image)
// degrade gracefully: the affected layer is skipped or falls back, a warning
// is logged, and the render continues. Structural failures (invalid brand
// config, unknown ratio, broken layout contract, encode errors) are returned.
func (r *Renderer) Render(req Request) ([]byte, error) {
	if req.Brand == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request has no brand")
	}
	v := req.Brand.Visual
	if err := v.Validate(); err != nil {
		return nil, err
	}

	dims, ok := AspectRatios[req.Ratio]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRatio, "unknown aspect ratio %q", req.Ratio)
	}
	width, height := dims[0], dims[1]

	// Font registration is process-wide and idempotent; an unreadable brand
	// font downgrades to the generic serif fallback.
	if v.Typography.Font != "" {
		if err := fonts.Register(v.Typography.Font); err != nil {
			r.logger.Warn("brand font unavailable, using fallback",
				"brand", req.Brand.ID, "font", v.Typography.Font, "err", errors.UserMessage(err))
		}
	}
	fnt := fonts.Resolve(v.Typography.Font)

	content := r.decodeContent(req)
	hasImage := content != nil

	plan := BuildStylePlan(v, req.Topic, hasImage, req.Seed)
	lr, err := ComputeLayout(plan, width, height, v, req.Topic, req.Seed)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(width, height)
	full := Zone{Width: width, Height: height}

	drawGraphicLayer(canvas, lr, v, BuildPalette(v), full)
	drawImageLayer(canvas, content, lr.ImageZone, lr.ImageDim)
	drawLogoLayer(canvas, r.resolveLogo(req, plan), lr, plan, width)
	drawTypeLayer(canvas, lr, v, fnt, req.Headline, req.Eyebrow, req.Caption)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeContent decodes the request's content image bytes, treating
// undecodable input as absent so the render falls back to a type-only
// treatment instead of failing.
func (r *Renderer) decodeContent(req Request) image.Image {
	if len(req.ContentImage) == 0 {
		return nil
	}
	img, err := imaging.Decode(bytes.NewReader(req.ContentImage))
	if err != nil {
		r.logger.Warn("content image undecodable, rendering without it",
			"brand", req.Brand.ID, "err", err)
		return nil
	}
	return img
}

// resolveLogo picks and decodes the effective logo: NoLogo suppresses it,
// otherwise the brand's background-appropriate asset wins over the
// caller-supplied path. Decode failures log a warning and skip the layer.
func (r *Renderer) resolveLogo(req Request, plan StylePlan) image.Image {
	if req.NoLogo {
		return nil
	}
	path := req.Brand.Visual.Logo.LogoFor(plan.Background)
	if path == "" {
		path = req.LogoPath
	}
	if path == "" {
		return nil
	}
	img, err := raster.DecodeLogo(path)
	if err != nil {
		r.logger.Warn("logo unavailable, skipping layer",
			"brand", req.Brand.ID, "logo", path, "err", errors.UserMessage(err))
		return nil
	}
	return img
}
