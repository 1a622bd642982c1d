package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amadad/phantom/pkg/cache"
	"github.com/amadad/phantom/pkg/compose"
	"github.com/amadad/phantom/pkg/errors"
)

const testBrandYAML = `
id: acme
visual:
  palette:
    background: "#f4f1ea"
    primary: "#1a2b3c"
    accent: "#e4572e"
  typography:
    sizes:
      sm: 28
      md: 44
      lg: 64
      display: 92
  layouts: [split, overlay, type-only]
`

func writeTestBrand(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.yaml")
	if err := os.WriteFile(path, []byte(testBrandYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteRendersAndCaches(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil)
	opts := Options{BrandPath: writeTestBrand(t), Headline: "Hello", Seed: "abc"}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheHit {
		t.Error("first render should miss the cache")
	}
	if len(first.PNG) == 0 {
		t.Fatal("first render produced no bytes")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second identical render should hit the cache")
	}
	if !bytes.Equal(first.PNG, second.PNG) {
		t.Error("cached bytes differ from rendered bytes")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil)
	opts := Options{BrandPath: writeTestBrand(t), Headline: "Hello", Seed: "abc"}

	if _, err := runner.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("Refresh should bypass the cache")
	}
}

func TestExecuteMissingBrand(t *testing.T) {
	runner := NewRunner(nil, nil)
	_, err := runner.Execute(context.Background(), Options{
		BrandPath: filepath.Join(t.TempDir(), "ghost.yaml"),
		Headline:  "x",
	})
	if !errors.Is(err, errors.ErrCodeBrandNotFound) {
		t.Errorf("Execute() = %v, want BRAND_NOT_FOUND", err)
	}
}

func TestPlanWithoutRasterizing(t *testing.T) {
	runner := NewRunner(nil, nil)
	opts := Options{BrandPath: writeTestBrand(t), Headline: "x", Topic: "launch", Seed: "abc"}

	plan, layout, err := runner.Plan(context.Background(), opts)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	// No content image: planning must land on type-only with an empty image zone.
	if plan.Layout != compose.LayoutTypeOnly {
		t.Errorf("plan layout = %q, want type-only", plan.Layout)
	}
	if !layout.ImageZone.Empty() {
		t.Errorf("image zone = %+v, want zero area", layout.ImageZone)
	}

	plan2, layout2, err := runner.Plan(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if plan != plan2 || layout != layout2 {
		t.Error("Plan() is not deterministic for identical options")
	}
}

func TestMoodboardPartialSuccess(t *testing.T) {
	runner := NewRunner(nil, nil)
	opts := Options{BrandPath: writeTestBrand(t), Headline: "Variants", Seed: "base"}

	variants := runner.Moodboard(context.Background(), opts, 4)
	if len(variants) != 4 {
		t.Fatalf("variants = %d, want 4", len(variants))
	}

	seeds := map[string]bool{}
	for i, v := range variants {
		if v.Err != nil {
			t.Errorf("variant %d failed: %v", i, v.Err)
			continue
		}
		if len(v.PNG) == 0 {
			t.Errorf("variant %d has no bytes", i)
		}
		if seeds[v.Seed] {
			t.Errorf("duplicate variant seed %q", v.Seed)
		}
		seeds[v.Seed] = true
	}
}

func TestMoodboardIsolatesFailures(t *testing.T) {
	runner := NewRunner(nil, nil)
	// A broken brand path fails every variant, but the batch itself must
	// return a full slice rather than aborting.
	opts := Options{BrandPath: filepath.Join(t.TempDir(), "ghost.yaml"), Headline: "x"}

	variants := runner.Moodboard(context.Background(), opts, 3)
	if len(variants) != 3 {
		t.Fatalf("variants = %d, want 3", len(variants))
	}
	for i, v := range variants {
		if v.Err == nil {
			t.Errorf("variant %d should carry the failure", i)
		}
	}
}

func TestMoodboardDefaultCount(t *testing.T) {
	runner := NewRunner(nil, nil)
	opts := Options{BrandPath: writeTestBrand(t), Headline: "x", Seed: "s"}

	variants := runner.Moodboard(context.Background(), opts, 0)
	if len(variants) != DefaultMoodboardCount {
		t.Errorf("variants = %d, want %d", len(variants), DefaultMoodboardCount)
	}
}
