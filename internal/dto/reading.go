package dto

import "time"

type CreateReadingRequest struct {
	MeterID         *string        `json:"meter_id" binding:"omitempty,uuid"`
	TransformerID   *string        `json:"transformer_id" binding:"omitempty,uuid"`
	ReadingType     string         `json:"reading_type" binding:"required,oneof=current voltage power power_factor temperature energy_consumption"`
	Value           float64        `json:"value" binding:"required"`
	Timestamp       time.Time      `json:"timestamp" binding:"required"`
	IsEstimated     bool           `json:"is_estimated"`
	ConfidenceScore *float64       `json:"confidence_score" binding:"omitempty,gte=0,lte=1"`
	SourceInfo      *string        `json:"source_info" binding:"omitempty,max=200"`
	Metadata        map[string]any `json:"metadata"`
}

type UpdateReadingRequest struct {
	ID              string         `json:"id" binding:"required,uuid"`
	Value           *float64       `json:"value"`
	IsEstimated     *bool          `json:"is_estimated"`
	ConfidenceScore *float64       `json:"confidence_score" binding:"omitempty,gte=0,lte=1"`
	SourceInfo      *string        `json:"source_info" binding:"omitempty,max=200"`
	Metadata        map[string]any `json:"metadata"`
}

type DeleteReadingsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type ReadingResponse struct {
	ID              string         `json:"id"`
	MeterID         *string        `json:"meter_id,omitempty"`
	TransformerID   *string        `json:"transformer_id,omitempty"`
	ReadingType     string         `json:"reading_type"`
	Unit            string         `json:"unit,omitempty"`
	Value           float64        `json:"value"`
	Timestamp       time.Time      `json:"timestamp"`
	IsEstimated     bool           `json:"is_estimated"`
	ConfidenceScore *float64       `json:"confidence_score,omitempty"`
	SourceInfo      *string        `json:"source_info,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// BulkCreateReadingsResponse summarises a bulk insert instead of echoing
// every created row.
type BulkCreateReadingsResponse struct {
	Message         string          `json:"message"`
	TotalCreated    int             `json:"total_created"`
	ReadingTypes    map[string]int  `json:"reading_types"`
	SourcesAffected SourcesAffected `json:"sources_affected"`
	TimeRange       TimeRange       `json:"time_range"`
}

type SourcesAffected struct {
	Meters       int `json:"meters"`
	Transformers int `json:"transformers"`
}

type TimeRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}
