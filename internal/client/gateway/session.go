package gateway

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/CarlosParra69/Citas-sub001/internal/client/models"
)

// tokenClaims is the subset of access-token claims the client cares about.
type tokenClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// fillUserFromToken backfills user fields from the access-token claims when
// the login payload omits them. The signature is deliberately not verified:
// authorization is enforced server-side, the client only personalizes menus.
func fillUserFromToken(s *models.Session) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &claims); err != nil {
		return
	}
	if s.User.ID == "" {
		s.User.ID = claims.Subject
	}
	if s.User.Name == "" {
		s.User.Name = claims.Name
	}
	if s.User.Role == "" {
		s.User.Role = models.Role(claims.Role)
	}
}
