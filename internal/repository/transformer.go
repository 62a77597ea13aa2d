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

type TransformerRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

var transformerSearchFields = []string{"name", "description"}

func NewTransformerRepository(db *gorm.DB) *TransformerRepository {
	return &TransformerRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "name", "description", "coverage_area_id",
			"created_at", "updated_at",
		),
	}
}

func (r *TransformerRepository) Create(ctx context.Context, transformer *model.Transformer) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	result := r.db.WithContext(ctx).Create(transformer)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create transformer").
			String("name", transformer.Name).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Transformer created successfully").
		String("transformer_id", transformer.ID.String()).
		String("name", transformer.Name).
		Log()

	return nil
}

func (r *TransformerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transformer, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var transformer model.Transformer
	result := r.db.WithContext(ctx).
		Preload("Meters").
		Where("id = ?", id).
		First(&transformer)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get transformer").
			String("transformer_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &transformer, nil
}

func (r *TransformerRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).
		Model(&model.Transformer{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update transformer").
			String("transformer_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *TransformerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Transformer{}, "id = ?", id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete transformer").
			String("transformer_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *TransformerRepository) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[model.Transformer], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	start := time.Now()
	result, err := listResource[model.Transformer](ctx, r.db.Preload("Meters"), params, r.fields, transformerSearchFields, page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list transformers").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Transformers listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
