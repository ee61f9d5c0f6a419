package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/observability"
	"github.com/Achu067/PLANEXA/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Seed == 0 {
		opts.Seed = NewSeed()
	}

	result := &Result{Seed: opts.Seed}

	genStart := time.Now()
	b, planHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Building = b
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.RoomCount = b.Metrics.TotalRooms
	result.CacheInfo.PlanHit = planHit

	r.Logger.Info("generated building",
		"floors", len(b.Floors),
		"rooms", b.Metrics.TotalRooms,
		"seed", opts.Seed,
		"duration", result.Stats.GenerateTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, b, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"count", len(artifacts),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates the building with caching and returns
// cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*plan.Building, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if opts.Seed == 0 {
		opts.Seed = NewSeed()
	}

	cacheKey := r.Keyer.PlanKey(opts.PlanKeyOpts(opts.Seed))

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var b plan.Building
		if err := json.Unmarshal(data, &b); err == nil {
			observability.Cache().OnCacheHit(ctx, "plan")
			return &b, true, nil
		}
		// Corrupt entry, fall through to regenerate.
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	start := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, opts.Floors, roomTotal(opts.Rooms))
	b, err := Generate(opts)
	observability.Pipeline().OnGenerateComplete(ctx, opts.Floors, roomTotal(opts.Rooms), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(b); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return b, false, nil
}

func roomTotal(rooms map[string]int) int {
	total := 0
	for _, n := range rooms {
		total += n
	}
	return total
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. The hit flag is true only when every requested artifact came from
// the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b *plan.Building, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	planData, err := json.Marshal(b)
	if err != nil {
		return nil, false, err
	}
	planHash := cache.Hash(planData)

	artifacts := make(map[string][]byte)
	allCached := true
	for _, name := range artifactNames(b, opts.Formats) {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.artifactKeyFor(name))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[name] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) > 0 {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := Render(b, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for name, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.artifactKeyFor(name))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactNames lists the artifact keys a render of b would produce, in a
// fixed order so the all-cached check is deterministic.
func artifactNames(b *plan.Building, formats []string) []string {
	var names []string
	for _, format := range formats {
		switch format {
		case FormatSVG, FormatPNG, FormatDOT:
			for _, f := range b.Floors {
				names = append(names, artifactName(format, f.Number))
			}
		case FormatJSON:
			names = append(names, "building.json")
		case FormatPDF:
			names = append(names, "building.pdf")
		}
	}
	return names
}

func artifactName(format string, floor int) string {
	if format == FormatDOT {
		return fmt.Sprintf("floor_%d.dot.svg", floor)
	}
	return fmt.Sprintf("floor_%d.%s", floor, format)
}

// artifactKeyFor maps an artifact name back to cache key options.
func (o *Options) artifactKeyFor(name string) cache.ArtifactKeyOpts {
	format, floor := parseArtifactName(name)
	return o.ArtifactKeyOpts(format, floor)
}

func parseArtifactName(name string) (string, int) {
	switch name {
	case "building.json":
		return FormatJSON, 0
	case "building.pdf":
		return FormatPDF, 0
	}

	var floor int
	rest := name[len("floor_"):]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		floor = floor*10 + int(rest[i]-'0')
		i++
	}
	switch rest[i:] {
	case ".dot.svg":
		return FormatDOT, floor
	case ".png":
		return FormatPNG, floor
	default:
		return FormatSVG, floor
	}
}
