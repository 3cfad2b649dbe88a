package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(subject string) IdentityClaims {
	now := time.Now()
	return IdentityClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testSecret, "authenticated")
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String())))
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		c := validClaims(userID.String())
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := svc.ValidateAccessToken(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"wrong secret", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims(userID.String()))
		}},
		{"wrong audience", func(t *testing.T) string {
			c := validClaims(userID.String())
			c.Audience = jwt.ClaimStrings{"anon"}
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)
		}},
		{"subject is not a uuid", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("someone"))
		}},
		{"missing expiry", func(t *testing.T) string {
			c := validClaims(userID.String())
			c.ExpiresAt = nil
			return sign(t, jwt.SigningMethodHS256, []byte(testSecret), c)
		}},
		{"other algorithm", func(t *testing.T) string {
			return sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID.String()))
		}},
		{"garbage", func(t *testing.T) string { return "not.a.token" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(ctx, tt.token(t))
			assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
		})
	}

	t.Run("audience check is optional", func(t *testing.T) {
		c := validClaims(userID.String())
		c.Audience = nil
		_, err := NewTokenService(testSecret, "").ValidateAccessToken(ctx, sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		assert.NoError(t, err)
	})
}
