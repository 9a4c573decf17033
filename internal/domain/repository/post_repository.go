package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrPostNotFound is returned when no post matches the lookup key.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// Create persists a new post. A dangling user reference surfaces as
	// the domain referential error via the store's foreign key check.
	Create(ctx context.Context, post *entity.Post) error

	// List returns all posts, newest first, with Author populated.
	List(ctx context.Context) ([]*entity.Post, error)

	// Count returns the total number of posts.
	Count(ctx context.Context) (int64, error)
}
