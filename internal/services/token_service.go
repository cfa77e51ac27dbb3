package services

import (
	"context"
	"errors"
	"time"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/lib/jwt"
	"marketing_site/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService issues and rotates JWT pairs. Refresh tokens are kept in
// an allow-list: a refresh that is not in storage is rejected even with a
// valid signature, and a used refresh is deleted before its replacement
// is issued.
type TokenService struct {
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	accessToken, err := jwt.NewToken(user, s.secret, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.NewToken(user, s.secret, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	err = s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := jwt.Parse(refreshToken, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	exists, err := s.repo.GetRefreshToken(ctx, claims.UserID, refreshToken)
	if err != nil || !exists {
		return nil, ErrInvalidToken
	}

	if err := s.repo.DeleteRefreshToken(ctx, claims.UserID, refreshToken); err != nil {
		return nil, err
	}

	user := models.User{
		ID:    userID,
		Email: claims.Email,
		Role:  claims.Role,
	}

	return s.GenerateTokens(ctx, user)
}

// Logout revokes every refresh token the user holds.
func (s *TokenService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := jwt.Parse(refreshToken, s.secret)
	if err != nil {
		return ErrInvalidToken
	}

	return s.repo.DeleteAllUserTokens(ctx, claims.UserID)
}

func (s *TokenService) Secret() string {
	return s.secret
}
