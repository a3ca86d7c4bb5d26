package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// PatientService creates patient records on the backend.
type PatientService interface {
	Create(ctx context.Context, rec models.PatientRecord) error
}

type patientService struct {
	client gateway.Client
}

func NewPatientService(client gateway.Client) PatientService {
	return &patientService{client: client}
}

// Create submits the record. A missing ClientID gets a fresh uuid so the
// backend can deduplicate retried submissions.
func (s *patientService) Create(ctx context.Context, rec models.PatientRecord) error {
	if rec.ClientID == "" {
		rec.ClientID = uuid.NewString()
	}
	if err := s.client.CreatePatient(ctx, rec); err != nil {
		return fmt.Errorf("error creating patient: %w", err)
	}
	return nil
}
