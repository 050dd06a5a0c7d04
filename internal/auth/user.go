package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadToken = errors.New("malformed token")

// User is the authenticated restaurant owner.
type User struct {
	ID        string
	Email     string
	FirstName string
	Token     string
}

type claims struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	jwt.RegisteredClaims
}

// UserFromToken reads the identity claims of a session token.
// The signature is not checked here; the backend verifies every request.
func UserFromToken(token string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrBadToken
	}
	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrBadToken)
	}
	return &User{ID: c.Subject, Email: c.Email, FirstName: c.FirstName, Token: token}, nil
}

// DisplayName is what the header shows for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	return u.Email
}
