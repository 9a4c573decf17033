package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/domain/service"
	mockSvc "pulse/internal/mocks/service"
)

func runAuthMiddleware(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewAuthMiddleware(tokenSvc, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw.Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached
}

func assertGenericUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, authFailedMessage, body["message"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthMiddleware(t, tokenSvc, "")

	assert.False(t, reached)
	assertGenericUnauthorized(t, rec)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthMiddleware(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assertGenericUnauthorized(t, rec)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	// Different failure classes must yield byte-identical responses.
	for name, validateErr := range map[string]error{
		"malformed": errors.Wrap(service.ErrTokenMalformed, "parse failed"),
		"signature": errors.Wrap(service.ErrTokenSignatureInvalid, "tampered"),
		"expired":   errors.Wrap(service.ErrTokenExpired, "too late"),
	} {
		t.Run(name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().Validate("bad-token").Return(nil, validateErr)

			rec, reached := runAuthMiddleware(t, tokenSvc, "Bearer bad-token")

			assert.False(t, reached)
			assertGenericUnauthorized(t, rec)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(&service.Claims{
		UserID: userID,
		Name:   "Test User",
	}, nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewAuthMiddleware(tokenSvc, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(c echo.Context) error {
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, "Test User", c.Get("userName"))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
