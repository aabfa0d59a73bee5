// SPDX-License-Identifier: MIT
// Package auth guards the admin inbox: a single bcrypt-hashed credential
// from config and a signed session cookie.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// DefaultSessionTTL is how long an admin session lasts when not configured
const DefaultSessionTTL = 8 * time.Hour

// ErrInvalidCredentials is returned for a wrong username or password
var ErrInvalidCredentials = errors.New("invalid username or password")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword verifies a password against a bcrypt hash using constant-time comparison
func CheckPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSecret returns a random hex string suitable for signing sessions
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Authenticator checks the admin credential and issues session tokens
type Authenticator struct {
	Username     string
	PasswordHash string
	TTL          time.Duration

	secret []byte
	now    func() time.Time
}

// NewAuthenticator returns an authenticator for the configured admin. An
// empty hash or secret means the admin inbox is not set up.
func NewAuthenticator(username, passwordHash, secret string, ttl time.Duration) (*Authenticator, error) {
	if username == "" || passwordHash == "" {
		return nil, errors.New("admin credential is not configured")
	}
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 characters")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Authenticator{
		Username:     username,
		PasswordHash: passwordHash,
		TTL:          ttl,
		secret:       []byte(secret),
		now:          time.Now,
	}, nil
}

// Login checks the credential and returns a session token
func (a *Authenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password
	passOK := CheckPassword(password, a.PasswordHash)
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return a.GenerateToken(username)
}
