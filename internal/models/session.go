package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server side half of a login. It lives in Redis under its
// ID; the signed token in the cookie carries the same ID.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
