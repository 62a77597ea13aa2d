package repository

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

type ReadingRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "meter_id", "transformer_id", "reading_type", "value",
			"timestamp", "is_estimated", "confidence_score",
			"created_at", "updated_at",
		),
	}
}

func (r *ReadingRepository) Create(ctx context.Context, reading *model.Reading) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	result := r.db.WithContext(ctx).Create(reading)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create reading").
			String("reading_type", reading.ReadingType).
			Err(result.Error).
			Log()
		return result.Error
	}

	return nil
}

// BulkCreate inserts all readings in one transaction.
func (r *ReadingRepository) BulkCreate(ctx context.Context, readings []model.Reading) error {
	ctx = ctxutil.WithScope(ctx, "repository", "BulkCreate")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(&readings)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to bulk create readings").
			Int("count", len(readings)).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Readings bulk created successfully").
		Int("count", len(readings)).
		Duration(duration).
		Log()

	return nil
}

// GetByIDs fetches readings for the given ids, in no particular order.
func (r *ReadingRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Reading, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByIDs")

	var readings []model.Reading
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&readings)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get readings by IDs").
			Int("requested_count", len(ids)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return readings, nil
}

// SaveAll persists a batch of modified readings in one transaction.
// All rows succeed or none do.
func (r *ReadingRepository) SaveAll(ctx context.Context, readings []model.Reading) error {
	ctx = ctxutil.WithScope(ctx, "repository", "SaveAll")

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range readings {
			if err := tx.Save(&readings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to save readings").
			Int("count", len(readings)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Readings updated successfully").
		Int("count", len(readings)).
		Log()

	return nil
}

// DeleteByIDs removes the readings with the given ids. Missing ids are
// ignored.
func (r *ReadingRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "DeleteByIDs")

	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Reading{})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete readings").
			Int("requested_count", len(ids)).
			Err(result.Error).
			Log()
		return 0, result.Error
	}

	logger.InfoWithContext(ctx, "Readings deleted successfully").
		Int64("deleted_count", result.RowsAffected).
		Log()

	return result.RowsAffected, nil
}

func (r *ReadingRepository) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[model.Reading], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	start := time.Now()
	result, err := listResource[model.Reading](ctx, r.db, params, r.fields, nil, page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list readings").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Readings listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
