// Package db selects and opens the credential store named by DATABASE_URL.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/pos-system/auth-service/internal/core/ports"
	gormstore "github.com/pos-system/auth-service/internal/infrastructure/db/gorm"
	mongostore "github.com/pos-system/auth-service/internal/infrastructure/db/mongo"
)

const (
	DriverRelational = "relational"
	DriverMongo      = "mongodb"
)

// Config describes the store to open.
type Config struct {
	URL string
	// MongoDatabase is only used with mongodb:// URLs.
	MongoDatabase string
	Debug         bool
}

// Store bundles the opened repository with its teardown.
type Store struct {
	Users  ports.UserRepository
	Driver string
	close  func(context.Context) error
}

// Close releases the store's connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store and ensures its schema and indexes exist.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if isMongoURL(cfg.URL) {
		client, database, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.URL, Database: cfg.MongoDatabase})
		if err != nil {
			return nil, err
		}
		repo := mongostore.NewUserRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return &Store{Users: repo, Driver: DriverMongo, close: client.Disconnect}, nil
	}

	gdb, err := gormstore.Connect(ctx, gormstore.Config{URL: cfg.URL, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:  gormstore.NewUserRepository(gdb),
		Driver: DriverRelational,
		close:  func(context.Context) error { return gormstore.Close(gdb) },
	}, nil
}

func isMongoURL(url string) bool {
	return strings.HasPrefix(url, "mongodb://") || strings.HasPrefix(url, "mongodb+srv://")
}
