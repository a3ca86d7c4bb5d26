package cli

import (
	"context"
	"fmt"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// Activity prints the recent activity feed. Super-administrators only.
func (a *App) Activity(ctx context.Context) error {
	if a.role() != models.RoleSuperAdmin {
		printlnFn("Only administrators can view the activity feed")
		return nil
	}

	items, err := a.actService.Recent(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No recent activity")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%s  %-20s %-15s %s",
			item.CreatedAt.Format("2006-01-02 15:04"), item.Actor, item.Action, item.Detail))
	}
	return nil
}
