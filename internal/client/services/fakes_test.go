package services

import (
	"context"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// fakeClient implements gateway.Client for service tests.
type fakeClient struct {
	LoginRet *models.Session
	LoginErr error

	RegisterErr error
	PingErr     error

	ListRet []models.Appointment
	ListErr error

	CreateErr error

	ActivityRet []models.ActivityItem
	ActivityErr error

	Token        string
	LastEmail    string
	LastPassword string
	LastPatient  models.PatientRecord
	CloseCalls   int
}

func (f *fakeClient) Close() error { f.CloseCalls++; return nil }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.LastEmail = email
	f.LastPassword = password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	f.Token = f.LoginRet.Token
	return f.LoginRet, nil
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.LastEmail = email
	return f.RegisterErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) { return nil, nil }

func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) UploadAvatar(ctx context.Context, path string) gateway.Result {
	return gateway.Result{}
}

func (f *fakeClient) FetchAvatar(ctx context.Context) gateway.Result { return gateway.Result{} }

func (f *fakeClient) DeleteAvatar(ctx context.Context) gateway.Result { return gateway.Result{} }

func (f *fakeClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreatePatient(ctx context.Context, rec models.PatientRecord) error {
	f.LastPatient = rec
	return f.CreateErr
}

func (f *fakeClient) Activity(ctx context.Context) ([]models.ActivityItem, error) {
	return f.ActivityRet, f.ActivityErr
}

// fakeAppointmentRepo implements appointments.Repository in memory.
type fakeAppointmentRepo struct {
	Items      []models.Appointment
	ReplaceErr error
	GetErr     error

	ReplaceCalls int
}

func (f *fakeAppointmentRepo) ReplaceAll(ctx context.Context, items []models.Appointment) error {
	f.ReplaceCalls++
	if f.ReplaceErr != nil {
		return f.ReplaceErr
	}
	f.Items = items
	return nil
}

func (f *fakeAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.Items, nil
}
