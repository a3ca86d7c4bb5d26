// Package models defines client-side data models used by the Citas CLI.
package models

// Role classifies what the authenticated user may do. Authorization itself
// is enforced server-side; the client only uses the role to shape menus.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RoleSuperAdmin Role = "superadmin"
)

// User is the authenticated account as reported by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session couples the bearer token with the user it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
