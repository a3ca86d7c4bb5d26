package cli

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/client/avatar"
)

// sweepAge: stored avatar copies older than this are considered abandoned
// by the explicit cleanup command.
const sweepAge = 30 * 24 * time.Hour

// outcomeMessage maps a typed capture outcome to the single user-facing
// notification. The policy itself stays presentation-free.
func outcomeMessage(res avatar.CaptureResult) string {
	switch res.Outcome {
	case avatar.OutcomeSynced:
		return "Profile photo updated"
	case avatar.OutcomeDegraded:
		return "Upload failed, keeping your photo locally: " + res.Message
	case avatar.OutcomeFailedLocal:
		return "Could not save the photo: " + res.Message
	default:
		return string(res.Outcome)
	}
}

func describeState(s avatar.DisplayState) string {
	switch s.Kind {
	case avatar.DisplayRemote:
		return "Avatar: " + s.Value
	case avatar.DisplayLocal:
		return "Avatar (local copy, not uploaded yet): " + s.Value
	default:
		return "No avatar set"
	}
}

func (a *App) AvatarSet(ctx context.Context) error {
	if a.policy == nil {
		printlnFn("Log in first")
		return nil
	}

	sourcePath, err := GetSimpleText(a.reader, "Path to the image file", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	res := a.policy.Capture(ctx, sourcePath)
	printlnFn(outcomeMessage(res))
	return res.Err
}

func (a *App) AvatarShow(ctx context.Context) error {
	if a.policy == nil {
		printlnFn("Log in first")
		return nil
	}
	printlnFn(describeState(a.policy.State()))
	return nil
}

func (a *App) AvatarDelete(ctx context.Context) error {
	if a.policy == nil {
		printlnFn("Log in first")
		return nil
	}

	confirm, err := GetSimpleText(a.reader, "Delete your profile photo? (y/N)", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	state, err := a.policy.Delete(ctx)
	if err != nil {
		printlnFn("Could not delete the photo:", err.Error())
		return err
	}
	printlnFn("Profile photo deleted.", describeState(state))
	return nil
}

func (a *App) AvatarCleanup(ctx context.Context) error {
	removed, err := a.store.Sweep(sweepAge)
	if err != nil {
		printlnFn("Cleanup failed:", err.Error())
		return err
	}
	printlnFn("Removed " + strconv.Itoa(removed) + " old local copies")
	return nil
}
