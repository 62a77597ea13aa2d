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

type AlertRepository struct {
	db     *gorm.DB
	fields query.FieldSet
}

var alertSearchFields = []string{"title", "message", "status"}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{
		db: db,
		fields: query.NewFieldSet(
			"id", "title", "message", "status", "created_at", "updated_at",
		),
	}
}

func (r *AlertRepository) Create(ctx context.Context, alert *model.Alert) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	result := r.db.WithContext(ctx).Create(alert)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create alert").
			String("title", alert.Title).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Alert created successfully").
		String("alert_id", alert.ID.String()).
		String("status", alert.Status).
		Log()

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var alert model.Alert
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&alert)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get alert").
			String("alert_id", id.String()).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &alert, nil
}

func (r *AlertRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update alert").
			String("alert_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Alert{}, "id = ?", id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete alert").
			String("alert_id", id.String()).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// List returns one page of alerts. When excludeExpired is set, a fixed
// status filter keeps expired alerts out regardless of client filters.
func (r *AlertRepository) List(ctx context.Context, params url.Values, page query.PageParams, excludeExpired bool) (*query.PaginatedResponse[model.Alert], error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	var extra []query.Filter
	if excludeExpired {
		extra = append(extra, query.Filter{
			Field:    "status",
			Operator: query.OpNe,
			Value:    query.ScalarValue(model.AlertStatusExpired),
		})
	}

	start := time.Now()
	result, err := listResource[model.Alert](ctx, r.db, params, r.fields, alertSearchFields, page, extra...)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list alerts").
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Alerts listed successfully").
		Int64("total", result.Total).
		Int("returned_count", len(result.Items)).
		Duration(time.Since(start)).
		Log()

	return result, nil
}
