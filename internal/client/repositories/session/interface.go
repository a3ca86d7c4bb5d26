// Package session stores small key/value items surviving restarts:
// the cached bearer token and the user it belongs to.
package session

import "context"

// Repository describes the key/value operations used for session state.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear wipes all session state (logout).
	Clear(ctx context.Context) error
}
