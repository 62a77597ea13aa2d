package dto

import "time"

type CreateCoverageAreaRequest struct {
	Type        string  `json:"type" binding:"required,oneof=country province district town"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"required"`
	ParentID    *string `json:"parent_id" binding:"omitempty,uuid"`
}

type UpdateCoverageAreaRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=country province district town"`
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty"`
	ParentID    *string `json:"parent_id" binding:"omitempty,uuid"`
}

type CoverageAreaResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ParentID        *string   `json:"parent_id,omitempty"`
	NumTransformers int       `json:"num_transformers"`
	NumMeters       int       `json:"num_meters"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CoverageAreaWithSubAreasResponse nests one level of sub-areas under the
// requested area.
type CoverageAreaWithSubAreasResponse struct {
	CoverageAreaResponse
	SubAreas []CoverageAreaResponse `json:"sub_areas"`
}

type CreateTransformerRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Description    string `json:"description" binding:"required"`
	CoverageAreaID string `json:"coverage_area_id" binding:"required,uuid"`
}

type UpdateTransformerRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	Description    *string `json:"description" binding:"omitempty"`
	CoverageAreaID *string `json:"coverage_area_id" binding:"omitempty,uuid"`
}

type TransformerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CoverageAreaID string    `json:"coverage_area_id"`
	NumMeters      int       `json:"num_meters"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateMeterRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Description   string `json:"description" binding:"required"`
	TransformerID string `json:"transformer_id" binding:"required,uuid"`
}

type UpdateMeterRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=100"`
	Description   *string `json:"description" binding:"omitempty"`
	TransformerID *string `json:"transformer_id" binding:"omitempty,uuid"`
}

type MeterResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	TransformerID string    `json:"transformer_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
