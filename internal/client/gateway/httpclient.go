package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/common"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
	log     logging.Logger
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// Used on login and when resuming a cached session.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends a request and decodes the response envelope. Transport failures
// are wrapped with common.ErrUnavailable, HTTP 401 with common.ErrUnauthorized.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return nil, fmt.Errorf("decode response %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &env, fmt.Errorf("%w: %s", common.ErrUnauthorized, env.Message)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = resp.Status
		}
		return &env, fmt.Errorf("%s %s: %s", method, path, msg)
	}

	return &env, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in any) (*envelope, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json")
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil, "")
	return err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	in := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/auth/login", in)
	if err != nil {
		return nil, err
	}

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode login payload: %w", err)
	}
	if data.Token == "" {
		return nil, errors.New("login response carries no token")
	}

	session := &models.Session{Token: data.Token, User: data.User}
	fillUserFromToken(session)

	c.token = session.Token
	return session, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	in := map[string]string{"name": name, "email": email, "password": password}
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/register", in)
	return err
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, "")
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}
	return &user, nil
}

// avatarData is the payload shape shared by upload and fetch.
type avatarData struct {
	AvatarURL string `json:"avatar_url"`
}

// UploadAvatar posts the file at path as a multipart form (field "avatar").
// All failures, transport or application, come back as Result{Success:false}.
func (c *HTTPClient) UploadAvatar(ctx context.Context, path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Message: "could not read local avatar file", Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filepath.Base(path))
	if err != nil {
		return Result{Message: "could not build upload request", Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return Result{Message: "could not build upload request", Err: err}
	}
	if err := mw.Close(); err != nil {
		return Result{Message: "could not build upload request", Err: err}
	}

	env, err := c.do(ctx, http.MethodPost, "/avatar/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return failureResult(env, err)
	}

	var data avatarData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Result{Message: "server returned an unreadable upload response", Err: err}
	}
	return Result{Success: true, URL: data.AvatarURL, Message: env.Message}
}

// FetchAvatar returns the authoritative avatar record for the current user.
// An account without an avatar is a success with an empty URL.
func (c *HTTPClient) FetchAvatar(ctx context.Context) Result {
	env, err := c.do(ctx, http.MethodGet, "/avatar/get", nil, "")
	if err != nil {
		return failureResult(env, err)
	}

	var data avatarData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return Result{Message: "server returned an unreadable avatar record", Err: err}
		}
	}
	return Result{Success: true, URL: data.AvatarURL, Message: env.Message}
}

// DeleteAvatar clears the remote avatar record. Deleting an absent avatar
// is not an error; the backend reports success either way.
func (c *HTTPClient) DeleteAvatar(ctx context.Context) Result {
	env, err := c.do(ctx, http.MethodDelete, "/avatar/delete", nil, "")
	if err != nil {
		return failureResult(env, err)
	}
	return Result{Success: true, Message: env.Message}
}

func failureResult(env *envelope, err error) Result {
	msg := "request failed"
	if env != nil && env.Message != "" {
		msg = env.Message
	} else if errors.Is(err, common.ErrUnavailable) {
		msg = "server unavailable"
	}
	return Result{Message: msg, Err: err}
}

func (c *HTTPClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	env, err := c.do(ctx, http.MethodGet, "/appointments", nil, "")
	if err != nil {
		return nil, err
	}
	var data struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode appointments payload: %w", err)
	}
	return data.Appointments, nil
}

func (c *HTTPClient) CreatePatient(ctx context.Context, rec models.PatientRecord) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/patients", rec)
	return err
}

func (c *HTTPClient) Activity(ctx context.Context) ([]models.ActivityItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/activity", nil, "")
	if err != nil {
		return nil, err
	}
	var data struct {
		Items []models.ActivityItem `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode activity payload: %w", err)
	}
	return data.Items, nil
}
