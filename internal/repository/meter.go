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

type MeterRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

var meterSearchFields = []string{"name", "description"}

func NewMeterRepository(db *gorm.DB) *MeterRepository {
	return &MeterRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "name", "description", "transformer_id",
			"created_at", "updated_at",
		),
	}
}

func (r *MeterRepository) Create(ctx context.Context, meter *model.Meter) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	result := r.db.WithContext(ctx).Create(meter)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create meter").
			String("name", meter.Name).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Meter created successfully").
		String("meter_id", meter.ID.String()).
		String("name", meter.Name).
		Log()

	return nil
}

func (r *MeterRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Meter, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var meter model.Meter
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&meter)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get meter").
			String("meter_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &meter, nil
}

func (r *MeterRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).
		Model(&model.Meter{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update meter").
			String("meter_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *MeterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Meter{}, "id = ?", id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete meter").
			String("meter_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *MeterRepository) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[model.Meter], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	start := time.Now()
	result, err := listResource[model.Meter](ctx, r.db, params, r.fields, meterSearchFields, page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list meters").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Meters listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
