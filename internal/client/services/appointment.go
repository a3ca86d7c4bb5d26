package services

import (
	"context"
	"fmt"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/client/repositories/appointments"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

// AppointmentService serves the appointment dashboard. The backend owns
// scheduling; the client keeps a replaceable offline cache.
type AppointmentService interface {
	// Refresh fetches the current list and replaces the cache.
	Refresh(ctx context.Context) ([]models.Appointment, error)

	// Cached returns the last fetched list for offline rendering.
	Cached(ctx context.Context) ([]models.Appointment, error)
}

type appointmentService struct {
	client gateway.Client
	repo   appointments.Repository
	log    logging.Logger
}

func NewAppointmentService(client gateway.Client, repo appointments.Repository, log logging.Logger) AppointmentService {
	return &appointmentService{client: client, repo: repo, log: log}
}

// Refresh returns the server's list even when updating the cache fails;
// a stale cache only degrades the next offline view.
func (s *appointmentService) Refresh(ctx context.Context) ([]models.Appointment, error) {
	items, err := s.client.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving appointments: %w", err)
	}

	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		s.log.Warn(ctx, "appointment cache not updated", "error", err)
	}
	return items, nil
}

func (s *appointmentService) Cached(ctx context.Context) ([]models.Appointment, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading appointment cache: %w", err)
	}
	return items, nil
}
