// Package kv provides a small string-keyed persistence layer used for
// durable state such as the spending balance. Implementations can use
// process memory, a JSON file, or postgres.
package kv

import (
	"context"
)

// Store defines the interface for key-value persistence.
// All writes are synchronous: when Set returns nil the value is durable
// for the chosen backend.
type Store interface {
	// Get retrieves the value stored at key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the value at key.
	// Returns nil if the key doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error
}

// Config selects and configures a Store implementation.
type Config struct {
	Provider    string // "memory", "file" or "postgres"
	FilePath    string // file provider: path to the JSON state file
	DatabaseURL string // postgres provider: connection string
}

// NewStore creates a Store implementation based on configuration.
func NewStore(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.FilePath)
	case "postgres":
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
