package seed

import (
	"context"
	"fmt"

	"github.com/Simplici0/housecost/internal/estimate"
	"github.com/Simplici0/housecost/internal/kvstore"
	"github.com/Simplici0/housecost/internal/savedconfig"
)

// ExampleName is the name of the seeded worked-example configuration.
const ExampleName = "Ví dụ: Nhà phố 5x12m, 2 tầng"

// Config contains the values required by startup seed.
type Config struct {
	// Example adds the worked example to the saved configurations.
	Example bool
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, kv kvstore.KV, store *savedconfig.Store, cfg Config) (Stats, error) {
	stats := Stats{}

	if err := ensureCollection(ctx, kv, &stats); err != nil {
		return Stats{}, err
	}
	if cfg.Example {
		if err := ensureExample(ctx, store, &stats); err != nil {
			return Stats{}, err
		}
	}

	return stats, nil
}

func ensureCollection(ctx context.Context, kv kvstore.KV, stats *Stats) error {
	_, exists, err := kv.Get(ctx, savedconfig.StorageKey)
	if err != nil {
		return fmt.Errorf("check saved configurations existence: %w", err)
	}
	if exists {
		return nil
	}

	empty, err := savedconfig.Encode(nil)
	if err != nil {
		return err
	}
	if err := kv.Put(ctx, savedconfig.StorageKey, empty); err != nil {
		return fmt.Errorf("insert empty saved configurations: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureExample(ctx context.Context, store *savedconfig.Store, stats *Stats) error {
	entries, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load saved configurations: %w", err)
	}
	for _, e := range entries {
		if e.Name == ExampleName {
			return nil
		}
	}

	if _, err := store.Add(ctx, ExampleName, estimate.ExampleConfiguration()); err != nil {
		return fmt.Errorf("insert example configuration: %w", err)
	}
	stats.Inserts++
	return nil
}
