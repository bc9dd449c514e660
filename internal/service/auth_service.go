package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// AuthService handles admin authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken, accessTokenID string, accessTTL time.Duration) error
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login authenticates the admin and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	adminID := admin.ID.String()

	_, accessToken, err = s.jwtService.GenerateAccessToken(adminID, admin.Username)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(adminID, admin.Username)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, adminID, admin.Username, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID := claims.ID
	if tokenID == "" {
		return "", ErrInvalidRefreshToken
	}

	// A token absent from the store has been revoked or has expired.
	storedAdminID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if storedAdminID != claims.AdminID || storedUsername != claims.Username {
		return "", ErrInvalidRefreshToken
	}

	_, accessToken, err = s.jwtService.GenerateAccessToken(claims.AdminID, claims.Username)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes the refresh token and blacklists the presented access token
// for its remaining lifetime.
func (s *authService) Logout(ctx context.Context, refreshToken, accessTokenID string, accessTTL time.Duration) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	if accessTokenID != "" {
		if err := s.tokenStore.BlacklistAccessToken(ctx, accessTokenID, accessTTL); err != nil {
			return fmt.Errorf("blacklist access token: %w", err)
		}
	}

	return nil
}

// EnsureAdmin creates the single admin record when it does not exist yet.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check admin existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("default admin %q created", username)
	return nil
}
