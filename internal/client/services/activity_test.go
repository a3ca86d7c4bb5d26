package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/common"
)

func TestRecent(t *testing.T) {
	items := []models.ActivityItem{{ID: "e-1", Action: "login"}}
	svc := NewActivityService(&fakeClient{ActivityRet: items})

	got, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestRecentFailure(t *testing.T) {
	svc := NewActivityService(&fakeClient{ActivityErr: common.ErrUnauthorized})

	_, err := svc.Recent(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
