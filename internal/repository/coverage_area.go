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

type CoverageAreaRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

var areaSearchFields = []string{"name", "description", "type"}

func NewCoverageAreaRepository(db *gorm.DB) *CoverageAreaRepository {
	return &CoverageAreaRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "name", "description", "type", "parent_id",
			"created_at", "updated_at",
		),
	}
}

func (r *CoverageAreaRepository) Create(ctx context.Context, area *model.CoverageArea) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(area)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create coverage area").
			String("name", area.Name).
			String("type", area.Type).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Coverage area created successfully").
		String("area_id", area.ID.String()).
		String("name", area.Name).
		Duration(time.Since(start)).
		Log()

	return nil
}

// GetByID loads an area with its transformers and their meters.
func (r *CoverageAreaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CoverageArea, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var area model.CoverageArea
	result := r.db.WithContext(ctx).
		Preload("Transformers.Meters").
		Where("id = ?", id).
		First(&area)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get coverage area").
			String("area_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &area, nil
}

// GetWithSubAreas loads the full hierarchy under one area: its own
// transformers and meters plus one level of sub-areas with theirs.
func (r *CoverageAreaRepository) GetWithSubAreas(ctx context.Context, id uuid.UUID) (*model.CoverageArea, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetWithSubAreas")

	var area model.CoverageArea
	result := r.db.WithContext(ctx).
		Preload("Transformers.Meters").
		Preload("SubAreas.Transformers.Meters").
		Where("id = ?", id).
		First(&area)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get coverage area with sub-areas").
			String("area_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &area, nil
}

func (r *CoverageAreaRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).
		Model(&model.CoverageArea{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update coverage area").
			String("area_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Coverage area updated successfully").
		String("area_id", id.String()).
		Int64("rows_affected", result.RowsAffected).
		Log()

	return nil
}

func (r *CoverageAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.CoverageArea{}, "id = ?", id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete coverage area").
			String("area_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Coverage area deleted successfully").
		String("area_id", id.String()).
		Log()

	return nil
}

func (r *CoverageAreaRepository) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[model.CoverageArea], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	start := time.Now()
	result, err := listResource[model.CoverageArea](ctx, r.db.Preload("Transformers.Meters"), params, r.fields, areaSearchFields, page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list coverage areas").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Coverage areas listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
