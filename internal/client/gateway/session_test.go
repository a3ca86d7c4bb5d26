package gateway

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestFillUserFromToken(t *testing.T) {
	t.Run("backfills missing fields", func(t *testing.T) {
		s := &models.Session{
			Token: signedToken(t, jwt.MapClaims{"sub": "u-9", "name": "Ana", "role": "superadmin"}),
		}

		fillUserFromToken(s)

		assert.Equal(t, "u-9", s.User.ID)
		assert.Equal(t, "Ana", s.User.Name)
		assert.Equal(t, models.RoleSuperAdmin, s.User.Role)
	})

	t.Run("payload fields win over claims", func(t *testing.T) {
		s := &models.Session{
			Token: signedToken(t, jwt.MapClaims{"sub": "u-9", "name": "Ana", "role": "superadmin"}),
			User:  models.User{ID: "u-1", Name: "Luisa", Role: models.RolePatient},
		}

		fillUserFromToken(s)

		assert.Equal(t, "u-1", s.User.ID)
		assert.Equal(t, "Luisa", s.User.Name)
		assert.Equal(t, models.RolePatient, s.User.Role)
	})

	t.Run("malformed token leaves user untouched", func(t *testing.T) {
		s := &models.Session{Token: "not-a-jwt", User: models.User{ID: "u-1"}}

		fillUserFromToken(s)

		assert.Equal(t, "u-1", s.User.ID)
		assert.Empty(t, s.User.Name)
		assert.Empty(t, s.User.Role)
	})
}
