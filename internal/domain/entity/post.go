package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content published by an authenticated user.
// The UserID must reference an existing User; the store enforces this.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time

	// Author is populated on reads so listings can surface the writer's
	// name and email without a second round-trip.
	Author *User
}
