package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

// InfrastructureService owns the coverage area, transformer and meter
// hierarchy.
type InfrastructureService struct {
	repoArea        *repository.CoverageAreaRepository
	repoTransformer *repository.TransformerRepository
	repoMeter       *repository.MeterRepository
}

func NewInfrastructureService(
	repoArea *repository.CoverageAreaRepository,
	repoTransformer *repository.TransformerRepository,
	repoMeter *repository.MeterRepository,
) *InfrastructureService {
	return &InfrastructureService{
		repoArea:        repoArea,
		repoTransformer: repoTransformer,
		repoMeter:       repoMeter,
	}
}

// --- Coverage areas ---

// CreateArea validates the optional parent and creates the area. A
// duplicate (name, type) pair is a client error.
func (s *InfrastructureService) CreateArea(ctx context.Context, req *dto.CreateCoverageAreaRequest) (*dto.CoverageAreaResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "CreateArea")

	parentID, err := s.resolveParent(ctx, req.ParentID, nil)
	if err != nil {
		return nil, err
	}

	area := &model.CoverageArea{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    parentID,
	}

	if err := s.repoArea.Create(ctx, area); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toAreaResponse(area), nil
}

func (s *InfrastructureService) GetArea(ctx context.Context, id uuid.UUID) (*dto.CoverageAreaResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetArea")

	area, err := s.repoArea.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toAreaResponse(area), nil
}

// GetAreaWithSubAreas returns the area plus one level of sub-areas, each
// with their transformer and meter counts.
func (s *InfrastructureService) GetAreaWithSubAreas(ctx context.Context, id uuid.UUID) (*dto.CoverageAreaWithSubAreasResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetAreaWithSubAreas")

	area, err := s.repoArea.GetWithSubAreas(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	response := &dto.CoverageAreaWithSubAreasResponse{
		CoverageAreaResponse: *toAreaResponse(area),
		SubAreas:             make([]dto.CoverageAreaResponse, 0, len(area.SubAreas)),
	}
	for i := range area.SubAreas {
		response.SubAreas = append(response.SubAreas, *toAreaResponse(&area.SubAreas[i]))
	}

	return response, nil
}

func (s *InfrastructureService) UpdateArea(ctx context.Context, id uuid.UUID, req *dto.UpdateCoverageAreaRequest) (*dto.CoverageAreaResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "UpdateArea")

	if _, err := s.repoArea.GetByID(ctx, id); err != nil {
		return nil, notFoundOrInternal(err)
	}

	updates := map[string]any{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		parentID, err := s.resolveParent(ctx, req.ParentID, &id)
		if err != nil {
			return nil, err
		}
		updates["parent_id"] = parentID
	}

	if len(updates) > 0 {
		if err := s.repoArea.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrAlreadyExists
			}
			return nil, notFoundOrInternal(err)
		}
	}

	area, err := s.repoArea.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toAreaResponse(area), nil
}

func (s *InfrastructureService) DeleteArea(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "service", "DeleteArea")

	if err := s.repoArea.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func (s *InfrastructureService) ListAreas(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[dto.CoverageAreaResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "ListAreas")

	areas, err := s.repoArea.List(ctx, params, page)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(areas, func(a model.CoverageArea) dto.CoverageAreaResponse {
		return *toAreaResponse(&a)
	}), nil
}

// resolveParent validates a parent area reference. selfID guards against an
// area adopting itself during update.
func (s *InfrastructureService) resolveParent(ctx context.Context, raw *string, selfID *uuid.UUID) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parentID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	if selfID != nil && parentID == *selfID {
		return nil, apperrors.ErrSelfParent
	}

	if _, err := s.repoArea.GetByID(ctx, parentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParentAreaNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return &parentID, nil
}

// --- Transformers ---

func (s *InfrastructureService) CreateTransformer(ctx context.Context, req *dto.CreateTransformerRequest) (*dto.TransformerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "CreateTransformer")

	areaID, err := uuid.Parse(req.CoverageAreaID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	if _, err := s.repoArea.GetByID(ctx, areaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParentAreaNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	transformer := &model.Transformer{
		Name:           req.Name,
		Description:    req.Description,
		CoverageAreaID: areaID,
	}

	if err := s.repoTransformer.Create(ctx, transformer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toTransformerResponse(transformer), nil
}

func (s *InfrastructureService) GetTransformer(ctx context.Context, id uuid.UUID) (*dto.TransformerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetTransformer")

	transformer, err := s.repoTransformer.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toTransformerResponse(transformer), nil
}

func (s *InfrastructureService) UpdateTransformer(ctx context.Context, id uuid.UUID, req *dto.UpdateTransformerRequest) (*dto.TransformerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "UpdateTransformer")

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CoverageAreaID != nil {
		areaID, err := uuid.Parse(*req.CoverageAreaID)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		if _, err := s.repoArea.GetByID(ctx, areaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParentAreaNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		updates["coverage_area_id"] = areaID
	}

	if len(updates) > 0 {
		if err := s.repoTransformer.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrAlreadyExists
			}
			return nil, notFoundOrInternal(err)
		}
	}

	transformer, err := s.repoTransformer.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toTransformerResponse(transformer), nil
}

func (s *InfrastructureService) DeleteTransformer(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "service", "DeleteTransformer")

	if err := s.repoTransformer.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func (s *InfrastructureService) ListTransformers(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[dto.TransformerResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "ListTransformers")

	transformers, err := s.repoTransformer.List(ctx, params, page)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(transformers, func(tr model.Transformer) dto.TransformerResponse {
		return *toTransformerResponse(&tr)
	}), nil
}

// --- Meters ---

func (s *InfrastructureService) CreateMeter(ctx context.Context, req *dto.CreateMeterRequest) (*dto.MeterResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "CreateMeter")

	transformerID, err := uuid.Parse(req.TransformerID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	if _, err := s.repoTransformer.GetByID(ctx, transformerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	meter := &model.Meter{
		Name:          req.Name,
		Description:   req.Description,
		TransformerID: transformerID,
	}

	if err := s.repoMeter.Create(ctx, meter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toMeterResponse(meter), nil
}

func (s *InfrastructureService) GetMeter(ctx context.Context, id uuid.UUID) (*dto.MeterResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetMeter")

	meter, err := s.repoMeter.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toMeterResponse(meter), nil
}

func (s *InfrastructureService) UpdateMeter(ctx context.Context, id uuid.UUID, req *dto.UpdateMeterRequest) (*dto.MeterResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "UpdateMeter")

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TransformerID != nil {
		transformerID, err := uuid.Parse(*req.TransformerID)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		if _, err := s.repoTransformer.GetByID(ctx, transformerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		updates["transformer_id"] = transformerID
	}

	if len(updates) > 0 {
		if err := s.repoMeter.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrAlreadyExists
			}
			return nil, notFoundOrInternal(err)
		}
	}

	meter, err := s.repoMeter.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	return toMeterResponse(meter), nil
}

func (s *InfrastructureService) DeleteMeter(ctx context.Context, id uuid.UUID) error {
	ctx = ctxutil.WithScope(ctx, "service", "DeleteMeter")

	if err := s.repoMeter.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func (s *InfrastructureService) ListMeters(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[dto.MeterResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "ListMeters")

	meters, err := s.repoMeter.List(ctx, params, page)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(meters, func(m model.Meter) dto.MeterResponse {
		return *toMeterResponse(&m)
	}), nil
}

// --- conversions ---

func toAreaResponse(area *model.CoverageArea) *dto.CoverageAreaResponse {
	numMeters := 0
	for i := range area.Transformers {
		numMeters += len(area.Transformers[i].Meters)
	}

	var parentID *string
	if area.ParentID != nil {
		id := area.ParentID.String()
		parentID = &id
	}

	return &dto.CoverageAreaResponse{
		ID:              area.ID.String(),
		Type:            area.Type,
		Name:            area.Name,
		Description:     area.Description,
		ParentID:        parentID,
		NumTransformers: len(area.Transformers),
		NumMeters:       numMeters,
		CreatedAt:       area.CreatedAt,
		UpdatedAt:       area.UpdatedAt,
	}
}

func toTransformerResponse(transformer *model.Transformer) *dto.TransformerResponse {
	return &dto.TransformerResponse{
		ID:             transformer.ID.String(),
		Name:           transformer.Name,
		Description:    transformer.Description,
		CoverageAreaID: transformer.CoverageAreaID.String(),
		NumMeters:      len(transformer.Meters),
		CreatedAt:      transformer.CreatedAt,
		UpdatedAt:      transformer.UpdatedAt,
	}
}

func toMeterResponse(meter *model.Meter) *dto.MeterResponse {
	return &dto.MeterResponse{
		ID:            meter.ID.String(),
		Name:          meter.Name,
		Description:   meter.Description,
		TransformerID: meter.TransformerID.String(),
		CreatedAt:     meter.CreatedAt,
		UpdatedAt:     meter.UpdatedAt,
	}
}

// notFoundOrInternal translates a store error at the service boundary.
func notFoundOrInternal(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return apperrors.WrapError(apperrors.ErrInternal, err)
}
