package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"
)

// PostView is the public shape of a post, with its author joined in.
type PostView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    *UserView `json:"author,omitempty"`
}

// NewPostView maps a domain post onto its public representation.
func NewPostView(post *entity.Post) *PostView {
	view := &PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		view.Author = NewUserView(post.Author)
	}

	return view
}

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePost handles post creation for the authenticated account. The
// author is taken from the verified token, never from the payload.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}

	input := new(usecase.CreatePostInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "Invalid post input")
	}
	input.UserID = userID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewPostView(post), "Post created successfully")
}

// ListPosts returns every post with its author. The route is public.
func (h *PostHandler) ListPosts(c echo.Context) error {
	output, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*PostView, 0, len(output.Posts))
	for _, post := range output.Posts {
		views = append(views, NewPostView(post))
	}

	return response.SuccessWithTotal(c, http.StatusOK, views, output.Total, "Posts retrieved successfully")
}
