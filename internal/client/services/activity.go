package services

import (
	"context"
	"fmt"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// ActivityService reads the super-administrator activity feed.
type ActivityService interface {
	Recent(ctx context.Context) ([]models.ActivityItem, error)
}

type activityService struct {
	client gateway.Client
}

func NewActivityService(client gateway.Client) ActivityService {
	return &activityService{client: client}
}

func (s *activityService) Recent(ctx context.Context) ([]models.ActivityItem, error) {
	items, err := s.client.Activity(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activity: %w", err)
	}
	return items, nil
}
