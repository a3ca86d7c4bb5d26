// Package appointments caches the appointment list fetched from the
// backend so the dashboard still renders while offline.
package appointments

import (
	"context"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// Repository describes the offline cache of the appointment list.
// The server is authoritative: each successful fetch replaces the cache
// wholesale.
type Repository interface {
	// ReplaceAll swaps the cached list for items in one transaction.
	ReplaceAll(ctx context.Context, items []models.Appointment) error

	// GetAll returns the cached list, soonest first.
	GetAll(ctx context.Context) ([]models.Appointment, error)
}
