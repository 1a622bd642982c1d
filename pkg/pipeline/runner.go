package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/amadad/phantom/pkg/brand"
	"github.com/amadad/phantom/pkg/cache"
	"github.com/amadad/phantom/pkg/compose"
	"github.com/amadad/phantom/pkg/errors"
)

// Runner executes the composition pipeline with caching.
// A Runner is safe for concurrent use; renders share no mutable state.
type Runner struct {
	Cache    cache.Cache
	Logger   *log.Logger
	Keyer    *cache.Keyer
	renderer *compose.Renderer
}

// NewRunner creates a pipeline runner. A nil cache disables caching and a
// nil logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Logger:   logger,
		Keyer:    cache.NewKeyer(),
		renderer: compose.NewRenderer(logger),
	}
}

// Result holds the output of one pipeline run.
type Result struct {
	PNG      []byte
	Plan     compose.StylePlan
	Layout   compose.LayoutResult
	CacheHit bool
	Duration time.Duration
}

// Execute runs the full pipeline for one poster: load brand, check the
// render cache, compose, store. The returned Result always carries the
// style plan and layout, even on a cache hit, since both are cheap pure
// recomputations.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withRatioDefault()
	start := time.Now()

	b, content, err := r.loadInputs(opts)
	if err != nil {
		return nil, err
	}

	plan, layout, err := planAndLayout(b, opts, len(content) > 0)
	if err != nil {
		return nil, err
	}

	key, err := r.posterKey(b, content, opts)
	if err != nil {
		return nil, err
	}

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("render cache hit", "brand", b.ID, "key", key[:16])
			return &Result{PNG: data, Plan: plan, Layout: layout, CacheHit: true, Duration: time.Since(start)}, nil
		}
	}

	png, err := r.renderer.Render(compose.Request{
		Brand:        b,
		Headline:     opts.Headline,
		Eyebrow:      opts.Eyebrow,
		Caption:      opts.Caption,
		ContentImage: content,
		Ratio:        opts.Ratio,
		LogoPath:     opts.LogoPath,
		NoLogo:       opts.NoLogo,
		Topic:        opts.Topic,
		Seed:         opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	_ = r.Cache.Set(ctx, key, png, TTLPoster)

	r.Logger.Info("rendered poster",
		"brand", b.ID,
		"layout", layout.Name,
		"ratio", opts.Ratio,
		"bytes", len(png),
		"duration", time.Since(start).Round(time.Millisecond))

	return &Result{PNG: png, Plan: plan, Layout: layout, Duration: time.Since(start)}, nil
}

// Plan computes the style plan and layout for the given options without
// rasterizing anything. Useful for debugging brand configurations.
func (r *Runner) Plan(ctx context.Context, opts Options) (compose.StylePlan, compose.LayoutResult, error) {
	opts = opts.withRatioDefault()

	b, content, err := r.loadInputs(opts)
	if err != nil {
		return compose.StylePlan{}, compose.LayoutResult{}, err
	}
	return planAndLayout(b, opts, len(content) > 0)
}

// Variant is one moodboard render. Err is set when the variant failed;
// failed variants never abort their siblings.
type Variant struct {
	Seed string
	PNG  []byte
	Err  error
}

// Moodboard renders count independent seeded variants of the same request
// concurrently. Each variant gets its own seed (derived from the request
// seed when set, random otherwise). Failures are isolated per variant:
// the returned slice always has count entries in seed order.
func (r *Runner) Moodboard(ctx context.Context, opts Options, count int) []Variant {
	if count <= 0 {
		count = DefaultMoodboardCount
	}

	variants := make([]Variant, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		seed := uuid.NewString()
		if opts.Seed != "" {
			seed = fmt.Sprintf("%s-%d", opts.Seed, i)
		}
		variants[i].Seed = seed

		wg.Add(1)
		go func(i int, seed string) {
			defer wg.Done()
			vopts := opts
			vopts.Seed = seed

			res, err := r.Execute(ctx, vopts)
			if err != nil {
				r.Logger.Warn("moodboard variant failed", "seed", seed, "err", errors.UserMessage(err))
				variants[i].Err = err
				return
			}
			variants[i].PNG = res.PNG
		}(i, seed)
	}
	wg.Wait()
	return variants
}

// loadInputs loads the brand file and the optional content image.
// An unreadable content image degrades to no image rather than failing,
// matching the renderer's treatment of undecodable bytes.
func (r *Runner) loadInputs(opts Options) (*brand.Brand, []byte, error) {
	b, err := brand.Load(opts.BrandPath)
	if err != nil {
		return nil, nil, err
	}

	var content []byte
	if opts.ImagePath != "" {
		content, err = os.ReadFile(opts.ImagePath)
		if err != nil {
			r.Logger.Warn("content image unreadable, rendering without it",
				"path", opts.ImagePath, "err", err)
			content = nil
		}
	}
	return b, content, nil
}

// planAndLayout recomputes the pure planning stages for the request.
func planAndLayout(b *brand.Brand, opts Options, hasImage bool) (compose.StylePlan, compose.LayoutResult, error) {
	dims, ok := compose.AspectRatios[opts.Ratio]
	if !ok {
		return compose.StylePlan{}, compose.LayoutResult{},
			errors.New(errors.ErrCodeInvalidRatio, "unknown aspect ratio %q", opts.Ratio)
	}

	plan := compose.BuildStylePlan(b.Visual, opts.Topic, hasImage, opts.Seed)
	layout, err := compose.ComputeLayout(plan, dims[0], dims[1], b.Visual, opts.Topic, opts.Seed)
	if err != nil {
		return compose.StylePlan{}, compose.LayoutResult{}, err
	}
	return plan, layout, nil
}

// posterKey derives the render cache key from every input that influences
// the output image.
func (r *Runner) posterKey(b *brand.Brand, content []byte, opts Options) (string, error) {
	brandData, err := json.Marshal(b)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize brand for cache key")
	}

	imageHash := ""
	if len(content) > 0 {
		imageHash = cache.Hash(content)
	}

	return r.Keyer.PosterKey(cache.Hash(brandData), cache.PosterKeyOpts{
		Headline:  opts.Headline,
		Eyebrow:   opts.Eyebrow,
		Caption:   opts.Caption,
		ImageHash: imageHash,
		Ratio:     opts.Ratio,
		LogoPath:  opts.LogoPath,
		NoLogo:    opts.NoLogo,
		Topic:     opts.Topic,
		Seed:      opts.Seed,
	}), nil
}
