package domain

import (
	"time"
)

// Session associates an opaque cookie token with a logged-in user.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
