package cmd

import (
	"context"
	"fmt"

	"fragment-loader/core/config"
	"fragment-loader/core/database"
	"fragment-loader/core/source"
	"fragment-loader/core/storage"

	"go.uber.org/zap"
)

// buildSource connects whatever backend the configured source driver needs.
func buildSource(ctx context.Context, cfg *config.Config, logg *zap.Logger) (source.Source, error) {
	deps := source.Deps{Bucket: cfg.Storage.Bucket}

	switch cfg.Source.Driver {
	case source.DriverStorage:
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		exists, err := store.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Storage.Bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}
		deps.Storage = store

	case source.DriverDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		dbSource := source.NewDatabaseSource(db)
		if err := dbSource.Migrate(ctx); err != nil {
			return nil, err
		}
		logg.Info("Connected to fragment database", zap.String("driver", cfg.Database.Driver))
		return dbSource, nil
	}

	src, err := source.New(cfg.Source, deps)
	if err != nil {
		return nil, err
	}
	logg.Info("Fragment source ready", zap.String("driver", cfg.Source.Driver))
	return src, nil
}
