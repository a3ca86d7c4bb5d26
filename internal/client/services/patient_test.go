package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

func TestCreateAssignsClientID(t *testing.T) {
	client := &fakeClient{}
	svc := NewPatientService(client)

	err := svc.Create(context.Background(), models.PatientRecord{FirstName: "Luis"})
	require.NoError(t, err)

	require.NotEmpty(t, client.LastPatient.ClientID)
	_, err = uuid.Parse(client.LastPatient.ClientID)
	assert.NoError(t, err)
}

func TestCreateKeepsCallerClientID(t *testing.T) {
	client := &fakeClient{}
	svc := NewPatientService(client)

	err := svc.Create(context.Background(), models.PatientRecord{ClientID: "c-1", FirstName: "Luis"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", client.LastPatient.ClientID)
}

func TestCreatePropagatesFailure(t *testing.T) {
	client := &fakeClient{CreateErr: errors.New("validation failed")}
	svc := NewPatientService(client)

	err := svc.Create(context.Background(), models.PatientRecord{FirstName: "Luis"})
	assert.Error(t, err)
}
