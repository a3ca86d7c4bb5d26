package cli

import (
	"context"
	"fmt"
)

// Appointments lists the user's appointments: from the server when online,
// otherwise from the local cache.
func (a *App) Appointments(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first")
		return nil
	}

	items, err := a.apptService.Refresh(ctx)
	if err != nil {
		printlnFn("Server unavailable, showing cached appointments")
		items, err = a.apptService.Cached(ctx)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
	}

	if len(items) == 0 {
		printlnFn("No appointments")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%s  %-20s %-20s %-15s %s",
			item.StartsAt.Format("2006-01-02 15:04"),
			item.PatientName, item.DoctorName, item.Specialty, item.Status))
	}
	return nil
}
