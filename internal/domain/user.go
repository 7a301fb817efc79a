package domain

import "time"

// User represents a user entity in the system. Accounts live in the
// external identity provider; this table mirrors the identities that have
// authored content, keyed by username.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Roles a user can hold. Moderators and admins may moderate comments;
// admins may additionally create categories.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleUser, RoleModerator, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Viewer is the identity making the current request. A nil *Viewer means
// the request is anonymous.
type Viewer struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
