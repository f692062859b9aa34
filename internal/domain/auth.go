// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User is an account allowed into the journal. The journal has one owner;
// PasswordHash is empty for an owner who only signs in through SSO or a
// forward-auth proxy.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a login cookie's server-side record.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// UserRepository stores accounts. Lookups return (nil, nil) for an unknown
// user; Count lets setup refuse once an owner exists.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepository stores login sessions. GetByToken returns (nil, nil) for
// an unknown token; DeleteExpired reports how many sessions it removed.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
