package layout

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// GenerateBatch generates one level per config concurrently. Every task gets
// its own grid and its own random source, so results depend only on each
// config's seed. Results keep the order of cfgs. The first error cancels the
// remaining tasks and is returned.
func (d *Director) GenerateBatch(ctx context.Context, cfgs []Config) ([]*Result, error) {
	// Fail fast on configuration errors before starting any work
	for _, cfg := range cfgs {
		if _, err := d.Resolve(cfg); err != nil {
			return nil, err
		}
	}

	results := make([]*Result, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	base := time.Now().UnixNano()
	for i, cfg := range cfgs {
		if cfg.Seed == 0 {
			cfg.Seed = base + int64(i)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.Seed))
			result, err := d.Generate(ctx, cfg, rng)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
