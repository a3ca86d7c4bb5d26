// Package gateway is the client's only door to the backend REST API:
// authentication, the avatar record, patient records and the activity feed.
//
// The three avatar operations share one failure shape: transport errors and
// application-level failures are both collapsed into Result{Success:false},
// so callers have exactly one case to handle.
package gateway

import (
	"context"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// Result is the outcome of an avatar operation against the backend.
type Result struct {
	// Success reports whether the server applied the operation.
	Success bool
	// URL is the authoritative avatar URL, when the operation returns one.
	URL string
	// Message is the human-readable server message, if any.
	Message string
	// Err carries the raw failure for diagnostics. Nil when Success is true.
	Err error
}

// Client defines the operations the CLI needs from the backend.
//
// All methods must honor context cancellation/timeouts. Methods other than
// the avatar trio return ordinary errors; the avatar trio never does.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, password string) error
	Me(ctx context.Context) (*models.User, error)
	SetToken(token string)

	UploadAvatar(ctx context.Context, path string) Result
	FetchAvatar(ctx context.Context) Result
	DeleteAvatar(ctx context.Context) Result

	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CreatePatient(ctx context.Context, rec models.PatientRecord) error
	Activity(ctx context.Context) ([]models.ActivityItem, error)
}
