package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/config"
	"pulse/internal/domain/service"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	cfg := &config.Config{Auth: &config.AuthConfig{Secret: secret, TokenTTL: ttl}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: ""}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTService_DefaultsNonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Minute} {
		svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: "s", TokenTTL: ttl}})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.(*jwtService).ttl)
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.Generate(userID, "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ValidateExpired(t *testing.T) {
	// Built directly: the constructor defaults non-positive TTLs to an
	// hour, and this test needs a token that is already expired.
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.Generate(uuid.New(), "Test User")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one", time.Hour)
	verifier := newTestJWTService(t, "secret-two", time.Hour)

	token, err := issuer.Generate(uuid.New(), "Test User")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_ValidateMalformed(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))

	_, err = svc.Validate("")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}
