package kvstore

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/Simplici0/housecost/internal/config"
	"github.com/Simplici0/housecost/internal/db"
	"github.com/Simplici0/housecost/internal/migrations"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open returns the backend selected by cfg.StoreDriver. The SQLite backend runs
// the schema migrations before it is returned. Callers must Close the returned
// closer when done.
func Open(ctx context.Context, cfg config.Config) (KV, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewMemory(), nopCloser, nil

	case config.StoreRedis:
		r, err := DialRedis(ctx, cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("using redis store (prefix %q)", cfg.RedisKeyPrefix)
		return r, r, nil

	case config.StoreSQLite, "":
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := migrations.Up(database); err != nil {
			_ = database.Close()
			return nil, nil, fmt.Errorf("run database migrations: %w", err)
		}
		log.Printf("using sqlite store at %s", cfg.DBPath)
		return NewSQLite(database), database, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
