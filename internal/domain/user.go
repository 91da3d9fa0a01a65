package domain

import "time"

// DefaultUserType is the role assigned when none is given at creation.
const DefaultUserType = "admin"

// User is the domain model for a stored account.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Age           *int
	Gender        string
	ContactNumber string
	Email         string
	Username      string
	Address       string
	PasswordHash  string `json:"-"`
	IsActive      bool
	Type          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanLogin reports whether the account may complete a login.
func (u *User) CanLogin() bool {
	return u.IsActive
}
