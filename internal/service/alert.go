package service

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

type AlertService struct {
	repo *repository.AlertRepository
}

func NewAlertService(repo *repository.AlertRepository) *AlertService {
	return &AlertService{repo: repo}
}

func (s *AlertService) Create(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	alert := &model.Alert{
		Title:   req.Title,
		Message: req.Message,
		Status:  req.Status,
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toAlertResponse(alert), nil
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*dto.AlertResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Get")

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toAlertResponse(alert), nil
}

func (s *AlertService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, notFoundOrInternal(err)
		}
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toAlertResponse(alert), nil
}

func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

// List returns one page of alerts, hiding expired ones unless the caller
// opts in with exclude_expired=false.
func (s *AlertService) List(ctx context.Context, params url.Values, page query.PageParams, excludeExpired bool) (*query.PaginatedResponse[dto.AlertResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "List")

	alerts, err := s.repo.List(ctx, params, page, excludeExpired)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(alerts, func(a model.Alert) dto.AlertResponse {
		return *toAlertResponse(&a)
	}), nil
}

func toAlertResponse(alert *model.Alert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:        alert.ID.String(),
		Title:     alert.Title,
		Message:   alert.Message,
		Status:    alert.Status,
		CreatedAt: alert.CreatedAt,
		UpdatedAt: alert.UpdatedAt,
	}
}
