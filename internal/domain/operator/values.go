package operator

import (
	"errors"
	"net/mail"
	"strings"
)

const minPasswordLen = 8

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

// Role orders what a dashboard user may do: viewers read, operators also
// change booking status, admins additionally manage operators.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleOperator:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return r.rank() > 0 }

// AtLeast reports whether r ranks at or above min; unknown roles never do.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && r.rank() >= min.rank()
}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

// Email is lower-cased and trimmed; display names ("Ann <a@b.c>") are rejected.
type Email string

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndexByte(s, '@'):], ".") {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

func (e Email) Value() string { return string(e) }

// Credentials is a login attempt that passed shape checks; it says nothing
// about whether the password is correct.
type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if len(password) < minPasswordLen {
		return Credentials{}, ErrPasswordTooWeak
	}
	return Credentials{email: e, password: password}, nil
}

func (c Credentials) Email() Email { return c.email }

func (c Credentials) Password() string { return c.password }
