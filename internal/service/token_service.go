package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// TokenService issues, rotates and revokes session token pairs. Only the
// digest of the newest refresh token is kept, on the user row, so every
// issue supersedes the previous refresh token of that user.
type TokenService struct {
	codec   model.TokenCodec
	store   model.UserStore
	digests model.Digester
	logger  *logger.Logger
}

func NewTokenService(codec model.TokenCodec, store model.UserStore, digests model.Digester, logger *logger.Logger) *TokenService {
	return &TokenService{codec: codec, store: store, digests: digests, logger: logger}
}

// Issue signs a new pair and persists the refresh token digest.
func (s *TokenService) Issue(ctx context.Context, userID int64, email string) (model.TokenPair, error) {
	access, err := s.codec.GenerateAccessToken(userID, email)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.codec.GenerateRefreshToken(userID, email)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	digest := s.digests.Digest(refresh)
	if err := s.store.SetRefreshTokenHash(ctx, userID, &digest); err != nil {
		return model.TokenPair{}, fmt.Errorf("persist refresh: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate checks the presented refresh token against the stored digest and
// issues a new pair. Any mismatch yields ErrAccessDenied.
func (s *TokenService) Rotate(ctx context.Context, userID int64, presentedRefresh string) (model.TokenPair, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TokenPair{}, model.ErrAccessDenied
		}
		return model.TokenPair{}, fmt.Errorf("load user: %w", err)
	}

	if err := s.validateRecord(user, presentedRefresh); err != nil {
		s.logger.Info("Token service: refresh rejected",
			"user_id", userID,
			"reason", err.Error())
		return model.TokenPair{}, model.ErrAccessDenied
	}

	return s.Issue(ctx, user.ID, user.Email)
}

// Revoke clears the stored digest so no refresh token of the user rotates.
func (s *TokenService) Revoke(ctx context.Context, userID int64) error {
	if err := s.store.SetRefreshTokenHash(ctx, userID, nil); err != nil {
		return fmt.Errorf("revoke refresh: %w", err)
	}
	return nil
}

// AccessSubject verifies an access token and returns its user id.
func (s *TokenService) AccessSubject(token string) (int64, error) {
	if token == "" {
		return 0, model.ErrUnauthenticated
	}
	userID, err := s.codec.ParseAccessToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrUnauthenticated, err)
	}
	return userID, nil
}

// RefreshSubject verifies a refresh token and returns its user id.
func (s *TokenService) RefreshSubject(token string) (int64, error) {
	if token == "" {
		return 0, model.ErrAccessDenied
	}
	userID, err := s.codec.ParseRefreshToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrAccessDenied, err)
	}
	return userID, nil
}

var (
	errNoActiveRefresh = errors.New("no active refresh token")
	errRefreshMismatch = errors.New("refresh token mismatch")
)

func (s *TokenService) validateRecord(user model.User, presented string) error {
	if user.RefreshTokenHash == nil || *user.RefreshTokenHash == "" {
		return errNoActiveRefresh
	}
	if !s.digests.Equal(presented, *user.RefreshTokenHash) {
		return errRefreshMismatch
	}
	return nil
}
