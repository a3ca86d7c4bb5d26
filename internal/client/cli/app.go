// Package cli implements the interactive terminal client: a REPL with
// role-gated commands over the application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/client/avatar"
	"github.com/CarlosParra69/Citas-sub001/internal/client/config"
	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/localdb"
	"github.com/CarlosParra69/Citas-sub001/internal/client/mediastore"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/client/services"
	"github.com/CarlosParra69/Citas-sub001/internal/client/transcode"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

// Mode reflects backend reachability.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the services together and holds per-session state.
type App struct {
	config      *config.Config
	authService services.AuthService
	apptService services.AppointmentService
	patService  services.PatientService
	actService  services.ActivityService
	gw          gateway.Client
	store       *mediastore.Store
	transcoder  *transcode.Transcoder
	log         logging.Logger

	session *models.Session
	policy  *avatar.Policy
	Mode    Mode
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := os.MkdirAll(c.DataDir, 0o770); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", c.DataDir, err)
	}

	repos, err := localdb.InitDatabase(ctx, filepath.Join(c.DataDir, "cache.db"))
	if err != nil {
		log.Error(ctx, "error initializing cache database", "error", err)
		return nil, err
	}

	apiClient := gateway.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, repos.DB),
		apptService: services.NewAppointmentService(apiClient, repos.Appointments, log),
		patService:  services.NewPatientService(apiClient),
		actService:  services.NewActivityService(apiClient),
		gw:          apiClient,
		store:       mediastore.New(c.DataDir, log),
		transcoder:  transcode.New(log),
		log:         log,
		Mode:        ModeOffline,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) role() models.Role {
	if a.session == nil {
		return ""
	}
	return a.session.User.Role
}

// startSession installs the logged-in user and builds the avatar policy
// for them; the initial DisplayState comes from the remote record.
func (a *App) startSession(ctx context.Context, sess *models.Session) {
	a.session = sess
	a.policy = avatar.New(sess.User.ID, a.gw, a.store, a.transcoder, transcode.DefaultQuality, a.log)
	a.policy.Load(ctx)
}

func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.User.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to", string(mode), "mode")
	}
}

// Run resumes a cached session if there is one, starts the reachability
// watcher and enters the REPL. It returns when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	if sess, err := a.authService.Resume(ctx); err == nil {
		a.startSession(ctx, sess)
		printlnFn("Welcome back,", sess.User.Name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Citas CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher probes server reachability on a ticker and
// flips the mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
