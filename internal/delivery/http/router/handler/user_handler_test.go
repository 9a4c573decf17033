package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/delivery/http/validator"
	"pulse/internal/domain/entity"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, discardLogger())

	user := &entity.User{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     "test@example.com",
		CreatedAt: time.Now(),
	}
	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.Email, data["email"])

	// The password hash must never appear in any serialized form.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, discardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Test User","email":"not-an-email","password":"Password123!"}`)

	err := handler.Register(c)
	assert.Error(t, err)
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, discardLogger())

	user := &entity.User{ID: uuid.New(), Name: "Test User", Email: "test@example.com"}
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Token: "signed.jwt.token", User: user}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"test@example.com","password":"Password123!"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "signed.jwt.token", body["token"])
}

func TestUserHandler_ListUsers_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, discardLogger())

	users := []*entity.User{
		{ID: uuid.New(), Name: "A", Email: "a@example.com", PasswordHash: "secret-hash"},
		{ID: uuid.New(), Name: "B", Email: "b@example.com", PasswordHash: "secret-hash"},
	}
	uc.EXPECT().ListUsers(mock.Anything).Return(users, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")

	require.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)

	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
