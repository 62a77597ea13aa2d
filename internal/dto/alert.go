package dto

import "time"

type CreateAlertRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Message string `json:"message" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=info warning error critical expired"`
}

type UpdateAlertRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=100"`
	Message *string `json:"message" binding:"omitempty"`
	Status  *string `json:"status" binding:"omitempty,oneof=info warning error critical expired"`
}

type AlertResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
