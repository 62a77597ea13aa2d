package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
)

func validReadingRequest() dto.CreateReadingRequest {
	meterID := uuid.NewString()
	return dto.CreateReadingRequest{
		MeterID:     &meterID,
		ReadingType: model.ReadingTypeVoltage,
		Value:       230.5,
		Timestamp:   time.Now(),
	}
}

func TestReadingService_BulkCreateRejectsEmptyBatch(t *testing.T) {
	svc := NewReadingService(nil)

	_, err := svc.BulkCreate(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyBulkRequest)
}

func TestReadingService_BulkCreateEnforcesLimit(t *testing.T) {
	svc := NewReadingService(nil)

	reqs := make([]dto.CreateReadingRequest, 501)
	for i := range reqs {
		reqs[i] = validReadingRequest()
	}

	_, err := svc.BulkCreate(context.Background(), reqs)
	assert.ErrorIs(t, err, apperrors.ErrBulkLimit)
}

func TestToReadingModel_SourceExclusivity(t *testing.T) {
	meterID := uuid.NewString()
	transformerID := uuid.NewString()

	tests := []struct {
		name          string
		meterID       *string
		transformerID *string
		wantErr       bool
	}{
		{"meter only", &meterID, nil, false},
		{"transformer only", nil, &transformerID, false},
		{"both", &meterID, &transformerID, true},
		{"neither", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReadingRequest()
			req.MeterID = tt.meterID
			req.TransformerID = tt.transformerID

			_, err := toReadingModel(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSummarise(t *testing.T) {
	meterA := uuid.New()
	meterB := uuid.New()
	transformer := uuid.New()

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	readings := []model.Reading{
		{MeterID: &meterA, ReadingType: model.ReadingTypeVoltage, Timestamp: t1},
		{MeterID: &meterA, ReadingType: model.ReadingTypeVoltage, Timestamp: t0},
		{MeterID: &meterB, ReadingType: model.ReadingTypeCurrent, Timestamp: t2},
		{TransformerID: &transformer, ReadingType: model.ReadingTypeVoltage, Timestamp: t1},
	}

	summary := summarise(readings)

	assert.Equal(t, 4, summary.TotalCreated)
	assert.Equal(t, 3, summary.ReadingTypes[model.ReadingTypeVoltage])
	assert.Equal(t, 1, summary.ReadingTypes[model.ReadingTypeCurrent])
	assert.Equal(t, 2, summary.SourcesAffected.Meters)
	assert.Equal(t, 1, summary.SourcesAffected.Transformers)
	assert.Equal(t, t0, summary.TimeRange.Earliest)
	assert.Equal(t, t2, summary.TimeRange.Latest)
}

func TestReadingService_UnitForType(t *testing.T) {
	svc := NewReadingService(nil)

	assert.Equal(t, "V", svc.UnitForType(model.ReadingTypeVoltage))
	assert.Equal(t, "kWh", svc.UnitForType(model.ReadingTypeEnergyConsumption))
	assert.Empty(t, svc.UnitForType(model.ReadingTypePowerFactor))
}

func TestReadingService_BulkDeleteRejectsBadID(t *testing.T) {
	svc := NewReadingService(nil)

	_, err := svc.BulkDelete(context.Background(), []string{"not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", apperrors.GetDomainError(err).Code)
}
