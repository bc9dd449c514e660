package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	adminID := uuid.New().String()

	tokenID, token, err := service.GenerateAccessToken(adminID, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, tokenID, claims.ID)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(uuid.New().String(), "admin")
	assert.NoError(t, err)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	service := NewJWTService("test-secret")
	_, token, err := service.GenerateAccessToken(uuid.New().String(), "admin")
	assert.NoError(t, err)

	other := NewJWTService("other-secret")
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")
	claims, err := service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
