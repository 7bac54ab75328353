package entities

import "time"

// UserRole gates what a staff member may do:
//   - admin: everything, including user management and quote deletion.
//   - estimator: create/edit quotes, approve/deny, run work orders.
//   - viewer: read-only.

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleEstimator UserRole = "estimator"
	UserRoleViewer    UserRole = "viewer"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEstimator, UserRoleViewer:
		return true
	}
	return false
}

// CanMutateQuotes reports whether the role may create or edit quotes.
func (r UserRole) CanMutateQuotes() bool {
	return r == UserRoleAdmin || r == UserRoleEstimator
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a workshop staff account. PasswordHash is a bcrypt hash; the clear
// password never leaves the auth layer.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Actor is the authenticated caller attached to a request after the JWT
// middleware runs. Usecases take it explicitly so role checks stay testable.
type Actor struct {
	ID   string
	Name string
	Role UserRole
}
