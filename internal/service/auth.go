// Package service provides business logic for authentication, item
// management, category ordering, and bulk transfer, delegating
// persistence to repository interfaces.
package service

import (
	"crypto/subtle"
	"errors"

	"github.com/linkboard/linkboard/internal/models"
)

var (
	// ErrMissingCredentials is returned when username or password is absent.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials is returned when the pair does not match the
	// configured admin values.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService validates admin credentials and tokens against the values
// configured at startup. There is one admin identity and one static
// token: concurrent logins share it, and nothing expires.
type AuthService struct {
	username string
	password string
	token    string
}

// NewAuthService constructs an AuthService from the configured admin
// username, password, and static token.
func NewAuthService(username, password, token string) *AuthService {
	return &AuthService{username: username, password: password, token: token}
}

// Login checks the supplied credentials and returns the auth payload on
// success. Comparison is constant-time so response timing does not leak
// how much of a guess matched.
func (s *AuthService) Login(username, password string) (models.AuthPayload, error) {
	if username == "" || password == "" {
		return models.AuthPayload{}, ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return models.AuthPayload{}, ErrInvalidCredentials
	}
	return s.Payload(), nil
}

// ValidToken reports whether the presented token equals the configured
// admin token.
func (s *AuthService) ValidToken(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}

// Payload returns the standard response body for an authenticated admin.
func (s *AuthService) Payload() models.AuthPayload {
	return models.AuthPayload{Token: s.token, Role: "admin", Username: s.username}
}
