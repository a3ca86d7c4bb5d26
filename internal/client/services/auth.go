// Package services contains application services for the Citas client.
// This file defines the authentication service: login, register, session
// resume from the local cache, liveness probe, and logout housekeeping.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/CarlosParra69/Citas-sub001/internal/client/gateway"
	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
	"github.com/CarlosParra69/Citas-sub001/internal/client/repositories/session"
	"github.com/CarlosParra69/Citas-sub001/internal/common"
	"github.com/CarlosParra69/Citas-sub001/internal/dbx"
)

const (
	sessionKeyToken = "token"
	sessionKeyUser  = "user"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and cache the session locally.
//   - Resume: restore the cached session without a network round trip.
//   - Register: create a new account on the server.
//   - Ping: check server liveness.
//   - Logout: wipe the cached session.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Resume(ctx context.Context) (*models.Session, error)
	Register(ctx context.Context, name, email string, password []byte) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote gateway
// and the local SQL database for the session cache.
type authService struct {
	client gateway.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client gateway.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getSessionRepo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

// Login authenticates against the server and persists the session
// (token and user) so a later start can Resume without re-entering
// credentials.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("session caching error: %w", err)
	}
	return sess, nil
}

// saveSession persists the token and the user snapshot in one transaction.
func (a *authService) saveSession(ctx context.Context, sess *models.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := session.NewSQLiteRepository(tx)
		if err := txRepo.Set(ctx, sessionKeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if err := txRepo.Set(ctx, sessionKeyUser, userJSON); err != nil {
			return err
		}
		return nil
	})
}

// Resume restores the cached session and re-arms the gateway with its
// token. Returns common.ErrNotFound when no session is cached.
func (a *authService) Resume(ctx context.Context) (*models.Session, error) {
	repo := a.getSessionRepo()

	token, err := repo.Get(ctx, sessionKeyToken)
	if err != nil {
		return nil, err
	}
	userJSON, err := repo.Get(ctx, sessionKeyUser)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(userJSON) == 0 {
		return nil, common.ErrNotFound
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}

	sess := &models.Session{Token: string(token), User: user}
	a.client.SetToken(sess.Token)
	return sess, nil
}

// Register creates a new account on the server.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	return a.client.Register(ctx, name, email, string(password))
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Logout wipes the cached session.
func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.getSessionRepo().Clear(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
