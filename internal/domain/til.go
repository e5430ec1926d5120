package domain

import (
	"time"

	"github.com/google/uuid"
)

// Til is a single "Today I Learned" post.
// Body is nil when the author supplied only a title.
type Til struct {
	ID         uuid.UUID
	Title      string
	Body       *string
	InsertedAt time.Time
	UpdatedAt  time.Time
}
