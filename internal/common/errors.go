// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Local media store errors. Save wraps copy failures with ErrStorage so
	// the reconciliation flow can distinguish them from gateway failures.
	ErrStorage = errors.New("storage error")

	// Gateway/auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrTokenExpired = errors.New("token expired")
)
