package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reading types
const (
	ReadingTypeCurrent           = "current"
	ReadingTypeVoltage           = "voltage"
	ReadingTypePower             = "power"
	ReadingTypePowerFactor       = "power_factor"
	ReadingTypeTemperature       = "temperature"
	ReadingTypeEnergyConsumption = "energy_consumption"
)

// ReadingUnits maps each reading type to its standard unit. Power factor is
// dimensionless.
var ReadingUnits = map[string]string{
	ReadingTypeCurrent:           "A",
	ReadingTypeVoltage:           "V",
	ReadingTypePower:             "W",
	ReadingTypePowerFactor:       "",
	ReadingTypeTemperature:       "°C",
	ReadingTypeEnergyConsumption: "kWh",
}

// Reading is one time-series measurement from a meter or a transformer,
// never both. The table is range-partitioned by timestamp; the parent table
// and partitions are created by raw DDL in pkg/database, so Reading is
// excluded from AutoMigrate.
type Reading struct {
	Base
	MeterID       *uuid.UUID `gorm:"column:meter_id;type:uuid;index"`
	TransformerID *uuid.UUID `gorm:"column:transformer_id;type:uuid;index"`

	ReadingType     string            `gorm:"column:reading_type;size:20;not null;index"`
	Value           float64           `gorm:"column:value;type:numeric(15,6);not null"`
	Timestamp       time.Time         `gorm:"column:timestamp;type:timestamptz;not null;index"`
	IsEstimated     bool              `gorm:"column:is_estimated;not null;default:false"`
	ConfidenceScore *float64          `gorm:"column:confidence_score;type:numeric(3,2)"`
	SourceInfo      *string           `gorm:"column:source_info;size:200"`
	Metadata        datatypes.JSONMap `gorm:"column:metadata;type:jsonb"`
}

func (Reading) TableName() string { return "readings" }
