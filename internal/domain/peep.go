package domain

import (
	"time"
)

type Peep struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	UserID    int64     `json:"user_id"`
	ParentID  *int64    `json:"parent_peep_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	AuthorName     string `json:"author_name,omitempty"`
	AuthorUsername string `json:"author_username,omitempty"`
}
