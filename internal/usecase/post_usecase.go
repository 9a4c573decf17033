package usecase

import (
	"context"

	"github.com/google/uuid"

	"pulse/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a post. UserID comes
// from the verified token, never from the request body.
type CreatePostInput struct {
	UserID  uuid.UUID `json:"-"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content" validate:"required"`
}

// ListPostsOutput returns the public listing with its total count.
type ListPostsOutput struct {
	Posts []*entity.Post
	Total int64
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context) (*ListPostsOutput, error)
}
