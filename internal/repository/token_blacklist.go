package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
)

type TokenBlacklistRepository struct {
	db *gorm.DB
}

func NewTokenBlacklistRepository(db *gorm.DB) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{db: db}
}

// GetOrCreate inserts a blacklist entry for the jti if one does not already
// exist. Logging out twice with the same token is a no-op.
func (r *TokenBlacklistRepository) GetOrCreate(ctx context.Context, entry *model.TokenBlacklist) error {
	ctx = ctxutil.WithScope(ctx, "repository", "GetOrCreate")

	var existing model.TokenBlacklist
	result := r.db.WithContext(ctx).Where("jti = ?", entry.JTI).First(&existing)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to blacklist token").
			String("jti", entry.JTI).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Token blacklisted").
		String("jti", entry.JTI).
		String("token_type", entry.TokenType).
		String("user_id", entry.UserID.String()).
		Log()

	return nil
}

// Exists reports whether the jti has been blacklisted.
func (r *TokenBlacklistRepository) Exists(ctx context.Context, jti string) (bool, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "Exists")

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TokenBlacklist{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteExpired removes entries whose tokens have passed their natural
// expiry; they can never be presented again.
func (r *TokenBlacklistRepository) DeleteExpired(ctx context.Context) (int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "DeleteExpired")

	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&model.TokenBlacklist{})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to cleanup expired blacklist entries").
			Err(result.Error).
			Log()
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		logger.InfoWithContext(ctx, "Expired blacklist entries removed").
			Int64("cleaned_count", result.RowsAffected).
			Log()
	}

	return result.RowsAffected, nil
}
