// Package avatar implements the reconciliation policy between the local
// avatar cache and the remote authoritative copy. It is the only component
// that decides what the UI shows for "current avatar" and the only one
// allowed to chain the transcoder, the media store and the gateway.
//
// The policy is presentation-free: it returns typed outcomes and the CLI
// layer maps them to user-facing messages.
package avatar

import (
	"context"
	"sync"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/mediastore"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

// DisplayKind selects which avatar copy the UI should render.
type DisplayKind string

const (
	// DisplayNone renders the placeholder (no avatar anywhere).
	DisplayNone DisplayKind = "none"
	// DisplayRemote renders the authoritative server URL.
	DisplayRemote DisplayKind = "remote"
	// DisplayLocal renders a locally cached file after a failed upload.
	DisplayLocal DisplayKind = "local"
)

// DisplayState is the value the UI renders for the current avatar.
// Value holds the remote URL or local path depending on Kind.
type DisplayState struct {
	Kind  DisplayKind
	Value string
}

// Outcome is the terminal state of a capture or delete flow.
type Outcome string

const (
	// OutcomeSynced: uploaded, the remote URL is authoritative again.
	OutcomeSynced Outcome = "synced"
	// OutcomeDegraded: saved locally but the upload failed; the local copy
	// is the interim display value and must not be lost.
	OutcomeDegraded Outcome = "degraded"
	// OutcomeFailedLocal: the local save itself failed; nothing changed.
	OutcomeFailedLocal Outcome = "failed_local"
	// OutcomeDeleted: the remote record was cleared.
	OutcomeDeleted Outcome = "deleted"
)

// CaptureResult reports one finished capture flow.
type CaptureResult struct {
	Outcome Outcome
	State   DisplayState
	// LocalPath is the sandboxed copy written during this capture, if any.
	LocalPath string
	// RemoteURL is the authoritative URL after a successful upload.
	RemoteURL string
	// Message is a server- or storage-supplied failure description.
	Message string
	Err     error
}

// Gateway is the slice of the backend client the policy needs.
type Gateway interface {
	UploadAvatar(ctx context.Context, path string) gateway.Result
	FetchAvatar(ctx context.Context) gateway.Result
	DeleteAvatar(ctx context.Context) gateway.Result
}

// Store persists local avatar copies.
type Store interface {
	Save(ctx context.Context, sourcePath, ownerID string) (mediastore.AvatarFile, error)
}

// Transcoder normalizes capture input before it is stored or uploaded.
type Transcoder interface {
	Compress(sourcePath string, quality float64) string
}

// Policy sequences transcode → persist → upload for capture events and owns
// the DisplayState. It receives the owner identity explicitly; there is no
// ambient session state.
type Policy struct {
	ownerID string
	gw      Gateway
	store   Store
	tc      Transcoder
	quality float64
	log     logging.Logger

	mu    sync.Mutex
	state DisplayState
}

func New(ownerID string, gw Gateway, store Store, tc Transcoder, quality float64, log logging.Logger) *Policy {
	return &Policy{
		ownerID: ownerID,
		gw:      gw,
		store:   store,
		tc:      tc,
		quality: quality,
		log:     log,
		state:   DisplayState{Kind: DisplayNone},
	}
}

// State returns the current DisplayState.
func (p *Policy) State() DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Capture runs one capture event to a terminal state:
//
//	transcode → persist → upload
//
// A transcoder fallback to the original image still proceeds. A failed
// persist surfaces OutcomeFailedLocal and leaves the DisplayState alone.
// A failed upload surfaces OutcomeDegraded with the local copy as interim
// display value; the file is retained for a user-initiated retry.
// Overlapping capture events are serialized on the policy's mutex.
func (p *Policy) Capture(ctx context.Context, sourcePath string) CaptureResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	compressed := p.tc.Compress(sourcePath, p.quality)

	saved, err := p.store.Save(ctx, compressed, p.ownerID)
	if err != nil {
		p.log.Error(ctx, "avatar capture failed before upload", "owner", p.ownerID, "error", err)
		return CaptureResult{
			Outcome: OutcomeFailedLocal,
			State:   p.state,
			Message: "could not save the photo locally",
			Err:     err,
		}
	}

	res := p.gw.UploadAvatar(ctx, saved.Path)
	if !res.Success {
		p.log.Warn(ctx, "avatar upload failed, keeping local copy", "owner", p.ownerID, "path", saved.Path, "error", res.Err)
		p.state = DisplayState{Kind: DisplayLocal, Value: saved.Path}
		return CaptureResult{
			Outcome:   OutcomeDegraded,
			State:     p.state,
			LocalPath: saved.Path,
			Message:   res.Message,
			Err:       res.Err,
		}
	}

	p.log.Info(ctx, "avatar synced", "owner", p.ownerID, "url", res.URL)
	p.state = DisplayState{Kind: DisplayRemote, Value: res.URL}
	return CaptureResult{
		Outcome:   OutcomeSynced,
		State:     p.state,
		LocalPath: saved.Path,
		RemoteURL: res.URL,
		Message:   res.Message,
	}
}

// Delete clears the remote avatar record. On success the DisplayState
// becomes none; on failure it is left unchanged and the failure is
// returned for the presentation layer to surface.
func (p *Policy) Delete(ctx context.Context) (DisplayState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.gw.DeleteAvatar(ctx)
	if !res.Success {
		p.log.Warn(ctx, "avatar delete failed", "owner", p.ownerID, "error", res.Err)
		return p.state, res.Err
	}

	p.state = DisplayState{Kind: DisplayNone}
	return p.state, nil
}

// Load derives the DisplayState at session start from the remote record:
// a present URL wins, anything else is none. Stale local files are never
// promoted at load time; a local path is only shown within the capture
// session that produced it.
func (p *Policy) Load(ctx context.Context) DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.gw.FetchAvatar(ctx)
	if res.Success && res.URL != "" {
		p.state = DisplayState{Kind: DisplayRemote, Value: res.URL}
		return p.state
	}
	if !res.Success {
		p.log.Warn(ctx, "avatar fetch failed at load", "owner", p.ownerID, "error", res.Err)
	}

	p.state = DisplayState{Kind: DisplayNone}
	return p.state
}
