package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/errors"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		Logger:   logger,
	})

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
	}
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		UserID:  uuid.New(),
		Title:   "First post",
		Content: "Hello world",
	}

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.UserID, post.UserID)
	assert.Equal(t, input.Title, post.Title)
	assert.Equal(t, input.Content, post.Content)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestPostService_CreatePost_DanglingAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		UserID:  uuid.New(),
		Title:   "Orphan post",
		Content: "No such author",
	}

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Return(errors.Wrap(domainerrors.ErrInvalidAccount, "author does not exist"))

	post, err := fx.service.CreatePost(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAccount))
}

func TestPostService_ListPosts_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Name: "Author", Email: "author@example.com"}
	posts := []*entity.Post{
		{ID: uuid.New(), UserID: author.ID, Title: "Newest", Author: author},
		{ID: uuid.New(), UserID: author.ID, Title: "Oldest", Author: author},
	}

	fx.postRepo.EXPECT().List(ctx).Return(posts, nil)
	fx.postRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	output, err := fx.service.ListPosts(ctx)

	require.NoError(t, err)
	assert.Equal(t, posts, output.Posts)
	assert.Equal(t, int64(2), output.Total)
}

func TestPostService_ListPosts_CountFailure(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().List(ctx).Return([]*entity.Post{}, nil)
	fx.postRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("count failed"))

	output, err := fx.service.ListPosts(ctx)

	assert.Error(t, err)
	assert.Nil(t, output)
}
