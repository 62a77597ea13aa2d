package model

import (
	"time"

	"github.com/google/uuid"
)

// User types
const (
	UserTypeAdmin = "admin"
	UserTypeUser  = "user"
)

type User struct {
	Base
	Email      string `gorm:"column:email;unique;not null;index"`
	FirstName  string `gorm:"column:first_name;not null"`
	LastName   string `gorm:"column:last_name;not null"`
	OtherNames string `gorm:"column:other_names"`
	Phone      string `gorm:"column:phone"`
	Type       string `gorm:"column:type;default:user"`
	HashedKey  string `gorm:"column:hashed_key;not null"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}

// TokenBlacklist records revoked JWT ids. A row exists for every token a
// user has logged out with, until its natural expiry passes and cleanup
// removes it.
type TokenBlacklist struct {
	Base
	JTI       string    `gorm:"column:jti;unique;not null;index"`
	TokenType string    `gorm:"column:token_type;not null"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
