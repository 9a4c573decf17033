package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pulse/config"
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/validator"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	infraauth "pulse/internal/infra/auth"
	"pulse/internal/usecase/impl"
)

// memStore fakes the persistence seam for full-stack handler tests:
// everything above the repository interfaces (validator, middleware,
// bcrypt, JWT, use cases, envelope) runs for real.
type memStore struct {
	mu    sync.Mutex
	users []*entity.User
	posts []*entity.Post
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users = append(r.store.users, user)

	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]*entity.User, len(r.store.users))
	for i, u := range r.store.users {
		users[len(r.store.users)-1-i] = u
	}

	return users, nil
}

type memPostRepo struct{ store *memStore }

func (r *memPostRepo) Create(_ context.Context, post *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found := false
	for _, u := range r.store.users {
		if u.ID == post.UserID {
			found = true

			break
		}
	}
	if !found {
		return domainerrors.ErrInvalidAccount.WrapMessage("post references a missing user")
	}

	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	r.store.posts = append(r.store.posts, post)

	return nil
}

func (r *memPostRepo) List(_ context.Context) ([]*entity.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	posts := make([]*entity.Post, len(r.store.posts))
	for i, p := range r.store.posts {
		clone := *p
		for _, u := range r.store.users {
			if u.ID == p.UserID {
				clone.Author = u

				break
			}
		}
		posts[len(r.store.posts)-1-i] = &clone
	}

	return posts, nil
}

func (r *memPostRepo) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.posts)), nil
}

type memRepoFactory struct{ store *memStore }

func (f *memRepoFactory) UserRepo() repository.UserRepository { return &memUserRepo{store: f.store} }
func (f *memRepoFactory) PostRepo() repository.PostRepository { return &memPostRepo{store: f.store} }

type memTxManager struct{ store *memStore }

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memRepoFactory{store: tm.store})
}

// newFlowServer assembles the HTTP surface the way the router does, with
// real bcrypt and JWT services and the fake store underneath.
func newFlowServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := &memStore{}
	logger := discardLogger()

	cfg := &config.Config{Auth: &config.AuthConfig{
		Secret:     "flow-test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}}
	hasher := infraauth.NewBcryptHasher(cfg)
	tokenSvc, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    &memTxManager{store: store},
		UserRepo:     &memUserRepo{store: store},
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	postUC := impl.NewPostService(impl.PostServiceParams{
		PostRepo: &memPostRepo{store: store},
		Logger:   logger,
	})

	userHandler := NewUserHandler(userUC, logger)
	postHandler := NewPostHandler(postUC, logger)
	authMW := middleware.NewAuthMiddleware(tokenSvc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	api := e.Group("/api")
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users", userHandler.ListUsers, authMW.Authenticate)
	api.GET("/posts", postHandler.ListPosts)
	api.POST("/posts", postHandler.CreatePost, authMW.Authenticate)

	return e
}

func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAccountPostFlow(t *testing.T) {
	e := newFlowServer(t)

	// Register a new account.
	rec := doRequest(e, http.MethodPost, "/api/users/register",
		`{"name":"Flow User","email":"flow@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	// Registering the same email again conflicts, with the generic message.
	rec = doRequest(e, http.MethodPost, "/api/users/register",
		`{"name":"Flow User","email":"flow@example.com","password":"Other456!"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Account already registered", decodeBody(t, rec)["message"])

	// A wrong password fails with the same message an unknown email would get.
	rec = doRequest(e, http.MethodPost, "/api/users/login",
		`{"email":"flow@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])

	rec = doRequest(e, http.MethodPost, "/api/users/login",
		`{"email":"nobody@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])

	// Log in and take the issued token.
	rec = doRequest(e, http.MethodPost, "/api/users/login",
		`{"email":"flow@example.com","password":"Password123!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	// Protected routes reject requests without the token.
	rec = doRequest(e, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/posts", `{"title":"x","content":"y"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Publish a post with the issued token.
	rec = doRequest(e, http.MethodPost, "/api/posts",
		`{"title":"First post","content":"Hello world"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The public listing shows the post joined to its author.
	rec = doRequest(e, http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	post, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "First post", post["title"])

	author, ok := post["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Flow User", author["name"])
	assert.Equal(t, "flow@example.com", author["email"])

	// The gated listing works with the token and never leaks the hash.
	rec = doRequest(e, http.MethodGet, "/api/users", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
