package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/redis"
)

// BlacklistService tracks revoked tokens. The database is the source of
// truth; Redis holds a deny entry per jti with TTL equal to the token's
// remaining lifetime, so hot-path checks rarely touch the database.
type BlacklistService struct {
	repo  *repository.TokenBlacklistRepository
	cache *redis.Client
}

func NewBlacklistService(repo *repository.TokenBlacklistRepository, cache *redis.Client) *BlacklistService {
	return &BlacklistService{repo: repo, cache: cache}
}

// Revoke blacklists the token identified by claims. Idempotent.
func (s *BlacklistService) Revoke(ctx context.Context, claims *TokenClaims, userID uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "service", "Revoke")

	entry := &model.TokenBlacklist{
		JTI:       claims.JTI,
		TokenType: claims.TokenType,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt,
	}

	if err := s.repo.GetOrCreate(ctx, entry); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.DenyToken(ctx, claims.JTI, time.Until(claims.ExpiresAt)); err != nil {
			// cache priming is best effort; the DB row already holds the truth
			logger.WarnWithContext(ctx, "Failed to prime token deny cache").
				String("jti", claims.JTI).
				Err(err).
				Log()
		}
	}

	return nil
}

// IsRevoked reports whether the jti has been blacklisted. Redis answers
// first; a miss or a cache failure falls back to the database.
func (s *BlacklistService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx = ctxutil.WithScope(ctx, "service", "IsRevoked")

	if s.cache != nil {
		denied, err := s.cache.IsTokenDenied(ctx, jti)
		if err == nil && denied {
			return true, nil
		}
		if err != nil {
			logger.WarnWithContext(ctx, "Token deny cache unavailable, checking database").
				String("jti", jti).
				Err(err).
				Log()
		}
	}

	exists, err := s.repo.Exists(ctx, jti)
	if err != nil {
		return false, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return exists, nil
}

// CleanupLoop periodically purges blacklist rows whose tokens have expired.
// Runs until ctx is cancelled; errors are logged and the loop keeps going.
func (s *BlacklistService) CleanupLoop(ctx context.Context, interval time.Duration) {
	ctx = ctxutil.WithScope(ctx, "service", "CleanupLoop")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.repo.DeleteExpired(ctx); err != nil {
				logger.ErrorWithContext(ctx, "Blacklist cleanup failed").
					Err(err).
					Log()
			}
		}
	}
}
