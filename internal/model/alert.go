package model

// Alert statuses
const (
	AlertStatusInfo     = "info"
	AlertStatusWarning  = "warning"
	AlertStatusError    = "error"
	AlertStatusCritical = "critical"
	AlertStatusExpired  = "expired"
)

type Alert struct {
	Base
	Title   string `gorm:"column:title;size:100;not null"`
	Message string `gorm:"column:message;type:text;not null"`
	Status  string `gorm:"column:status;size:10;not null"`
}

func (Alert) TableName() string { return "alerts" }
