package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost persists a post on behalf of the authenticated caller.
// The repository surfaces a foreign key violation as the referential domain
// error when the caller's account vanished mid-request.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Debug("Creating post", slog.Any("userID", input.UserID))

	post := &entity.Post{
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID))

	return post, nil
}

// ListPosts returns the public listing joined to author information,
// together with the total count.
func (srv *postService) ListPosts(ctx context.Context) (*usecase.ListPostsOutput, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	total, err := srv.postRepo.Count(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count posts")
	}

	return &usecase.ListPostsOutput{
		Posts: posts,
		Total: total,
	}, nil
}
