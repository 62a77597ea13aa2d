package dto

import "time"

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required,min=2,max=50"`
	LastName   string `json:"last_name" binding:"required,min=2,max=50"`
	OtherNames string `json:"other_names" binding:"omitempty,max=100"`
	Phone      string `json:"phone" binding:"omitempty,phone"`
	Type       string `json:"type" binding:"omitempty,oneof=admin user"`
	Key        string `json:"key" binding:"required,min=8,max=100"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Key   string `json:"key" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	OtherNames string    `json:"other_names,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TokenPairResponse is returned by login: a short-lived access token plus a
// long-lived refresh token.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
