package service

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/repository"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

type ReadingService struct {
	repo *repository.ReadingRepository
}

func NewReadingService(repo *repository.ReadingRepository) *ReadingService {
	return &ReadingService{repo: repo}
}

// Create stores a single reading.
func (s *ReadingService) Create(ctx context.Context, req *dto.CreateReadingRequest) (*dto.ReadingResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	reading, err := toReadingModel(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, reading); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toReadingResponse(reading), nil
}

// BulkCreate stores up to MaxBulkReadings readings in one transaction and
// returns summary statistics instead of every created row.
func (s *ReadingService) BulkCreate(ctx context.Context, reqs []dto.CreateReadingRequest) (*dto.BulkCreateReadingsResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "BulkCreate")

	if len(reqs) == 0 {
		return nil, apperrors.ErrEmptyBulkRequest
	}
	if len(reqs) > constants.MaxBulkReadings {
		return nil, apperrors.ErrBulkLimit
	}

	readings := make([]model.Reading, 0, len(reqs))
	for i := range reqs {
		reading, err := toReadingModel(&reqs[i])
		if err != nil {
			return nil, err
		}
		readings = append(readings, *reading)
	}

	if err := s.repo.BulkCreate(ctx, readings); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return summarise(readings), nil
}

// List returns one filtered page of readings, each annotated with the
// standard unit for its type.
func (s *ReadingService) List(ctx context.Context, params url.Values, page query.PageParams) (*query.PaginatedResponse[dto.ReadingResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "List")

	readings, err := s.repo.List(ctx, params, page)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return query.Map(readings, func(r model.Reading) dto.ReadingResponse {
		return *toReadingResponse(&r)
	}), nil
}

// BulkUpdate applies all updates or none. Every id must exist.
func (s *ReadingService) BulkUpdate(ctx context.Context, reqs []dto.UpdateReadingRequest) ([]dto.ReadingResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "BulkUpdate")

	if len(reqs) == 0 {
		return nil, apperrors.ErrEmptyBulkRequest
	}
	if len(reqs) > constants.MaxBulkReadings {
		return nil, apperrors.ErrBulkLimit
	}

	ids := make([]uuid.UUID, 0, len(reqs))
	byID := make(map[uuid.UUID]*dto.UpdateReadingRequest, len(reqs))
	for i := range reqs {
		id, err := uuid.Parse(reqs[i].ID)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		ids = append(ids, id)
		byID[id] = &reqs[i]
	}

	readings, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if len(readings) != len(byID) {
		logger.WarnWithContext(ctx, "Bulk update aborted, some readings missing").
			Int("requested", len(byID)).
			Int("found", len(readings)).
			Log()
		return nil, apperrors.ErrNotFound
	}

	for i := range readings {
		applyReadingUpdate(&readings[i], byID[readings[i].ID])
	}

	if err := s.repo.SaveAll(ctx, readings); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := make([]dto.ReadingResponse, 0, len(readings))
	for i := range readings {
		responses = append(responses, *toReadingResponse(&readings[i]))
	}
	return responses, nil
}

// BulkDelete removes the readings with the given ids. Missing ids are
// ignored; the count of deleted rows is returned.
func (s *ReadingService) BulkDelete(ctx context.Context, rawIDs []string) (int64, error) {
	ctx = ctxutil.WithScope(ctx, "service", "BulkDelete")

	if len(rawIDs) == 0 {
		return 0, apperrors.ErrEmptyBulkRequest
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return 0, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		ids = append(ids, id)
	}

	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return deleted, nil
}

// UnitForType returns the standard unit for a reading type, empty for
// dimensionless types.
func (s *ReadingService) UnitForType(readingType string) string {
	return model.ReadingUnits[readingType]
}

func toReadingModel(req *dto.CreateReadingRequest) (*model.Reading, error) {
	meterID, err := parseOptionalUUID(req.MeterID)
	if err != nil {
		return nil, err
	}
	transformerID, err := parseOptionalUUID(req.TransformerID)
	if err != nil {
		return nil, err
	}

	// exactly one source, mirrored by the DB check constraint
	if (meterID == nil) == (transformerID == nil) {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			apperrors.NewDomainError("READING_SOURCE", "a reading must reference exactly one of meter_id or transformer_id"))
	}

	return &model.Reading{
		MeterID:         meterID,
		TransformerID:   transformerID,
		ReadingType:     req.ReadingType,
		Value:           req.Value,
		Timestamp:       req.Timestamp,
		IsEstimated:     req.IsEstimated,
		ConfidenceScore: req.ConfidenceScore,
		SourceInfo:      req.SourceInfo,
		Metadata:        req.Metadata,
	}, nil
}

func applyReadingUpdate(reading *model.Reading, req *dto.UpdateReadingRequest) {
	if req.Value != nil {
		reading.Value = *req.Value
	}
	if req.IsEstimated != nil {
		reading.IsEstimated = *req.IsEstimated
	}
	if req.ConfidenceScore != nil {
		reading.ConfidenceScore = req.ConfidenceScore
	}
	if req.SourceInfo != nil {
		reading.SourceInfo = req.SourceInfo
	}
	if req.Metadata != nil {
		reading.Metadata = req.Metadata
	}
}

func toReadingResponse(reading *model.Reading) *dto.ReadingResponse {
	var meterID, transformerID *string
	if reading.MeterID != nil {
		id := reading.MeterID.String()
		meterID = &id
	}
	if reading.TransformerID != nil {
		id := reading.TransformerID.String()
		transformerID = &id
	}

	return &dto.ReadingResponse{
		ID:              reading.ID.String(),
		MeterID:         meterID,
		TransformerID:   transformerID,
		ReadingType:     reading.ReadingType,
		Unit:            model.ReadingUnits[reading.ReadingType],
		Value:           reading.Value,
		Timestamp:       reading.Timestamp,
		IsEstimated:     reading.IsEstimated,
		ConfidenceScore: reading.ConfidenceScore,
		SourceInfo:      reading.SourceInfo,
		Metadata:        reading.Metadata,
		CreatedAt:       reading.CreatedAt,
		UpdatedAt:       reading.UpdatedAt,
	}
}

// summarise builds the bulk-create response: counts per reading type, the
// distinct sources touched, and the covered time range.
func summarise(readings []model.Reading) *dto.BulkCreateReadingsResponse {
	types := make(map[string]int)
	meters := make(map[uuid.UUID]struct{})
	transformers := make(map[uuid.UUID]struct{})

	earliest := readings[0].Timestamp
	latest := readings[0].Timestamp
	for i := range readings {
		r := &readings[i]
		types[r.ReadingType]++
		if r.MeterID != nil {
			meters[*r.MeterID] = struct{}{}
		}
		if r.TransformerID != nil {
			transformers[*r.TransformerID] = struct{}{}
		}
		if r.Timestamp.Before(earliest) {
			earliest = r.Timestamp
		}
		if r.Timestamp.After(latest) {
			latest = r.Timestamp
		}
	}

	return &dto.BulkCreateReadingsResponse{
		Message:      "readings created successfully",
		TotalCreated: len(readings),
		ReadingTypes: types,
		SourcesAffected: dto.SourcesAffected{
			Meters:       len(meters),
			Transformers: len(transformers),
		},
		TimeRange: dto.TimeRange{
			Earliest: earliest,
			Latest:   latest,
		},
	}
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}
	return &id, nil
}
