package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// User is an account held by the authentication service.
type User struct {
	ID           string    `json:"_id"`
	Mail         string    `json:"mail"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the record a client persists for this user.
func (u *User) Identity() IdentityRecord {
	return IdentityRecord{ID: u.ID, Email: u.Mail}
}
