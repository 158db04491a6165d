package repository

import (
	"contact-book-backend/internal/domain"
	"contact-book-backend/internal/repository/memory"
	"contact-book-backend/internal/repository/postgres"
	"contact-book-backend/pkg/database"
	"context"
	"errors"
	"fmt"
)

// Supported STORE_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Driver      string
	DatabaseURL string
	Table       string
	MaxConns    int32
}

// New connects the configured store and prepares its schema.
// The returned close function releases the connection and is never nil.
func New(ctx context.Context, cfg Config) (domain.ContactRepository, func(), error) {
	switch cfg.Driver {
	case DriverMemory:
		return memory.NewContactRepository(), func() {}, nil

	case DriverPostgres, "":
		if cfg.DatabaseURL == "" {
			return nil, func() {}, errors.New("DATABASE_URL is required for the postgres store")
		}
		pool, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL, cfg.MaxConns)
		if err != nil {
			return nil, func() {}, err
		}
		if err := postgres.EnsureSchema(ctx, pool, cfg.Table); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		return postgres.NewContactRepository(pool, cfg.Table), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("unsupported store driver: %s (supported: %s, %s)", cfg.Driver, DriverPostgres, DriverMemory)
	}
}
