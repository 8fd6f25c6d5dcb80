package db

import (
	"context"
	"fmt"

	"todogql/internal/config"
	"todogql/internal/repository"
)

// Open connects the store selected by cfg.StoreDriver. The caller owns the
// returned Store and must Close it on shutdown.
func Open(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		mdb, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return repository.NewMongoStore(mdb), nil
	case config.DriverMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(gormDB), nil
	case config.DriverMemory:
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
