package model

import "github.com/google/uuid"

// Coverage area types, from widest to narrowest.
const (
	AreaTypeCountry  = "country"
	AreaTypeProvince = "province"
	AreaTypeDistrict = "district"
	AreaTypeTown     = "town"
)

// CoverageArea is a node in the self-referential service hierarchy.
// Transformers hang off areas; meters hang off transformers.
type CoverageArea struct {
	Base
	Type        string     `gorm:"column:type;size:15;not null;uniqueIndex:idx_coverage_areas_name_type"`
	Name        string     `gorm:"column:name;size:100;not null;uniqueIndex:idx_coverage_areas_name_type"`
	Description string     `gorm:"column:description;type:text;not null"`
	ParentID    *uuid.UUID `gorm:"column:parent_id;type:uuid;index"`

	ParentArea   *CoverageArea  `gorm:"foreignKey:ParentID"`
	SubAreas     []CoverageArea `gorm:"foreignKey:ParentID"`
	Transformers []Transformer  `gorm:"foreignKey:CoverageAreaID"`
}

func (CoverageArea) TableName() string { return "coverage_areas" }

type Transformer struct {
	Base
	Name           string    `gorm:"column:name;size:100;not null;unique"`
	Description    string    `gorm:"column:description;type:text;not null"`
	CoverageAreaID uuid.UUID `gorm:"column:coverage_area_id;type:uuid;not null;index"`

	CoverageArea *CoverageArea `gorm:"foreignKey:CoverageAreaID"`
	Meters       []Meter       `gorm:"foreignKey:TransformerID"`
}

func (Transformer) TableName() string { return "transformers" }

type Meter struct {
	Base
	Name          string    `gorm:"column:name;size:100;not null;unique"`
	Description   string    `gorm:"column:description;type:text;not null"`
	TransformerID uuid.UUID `gorm:"column:transformer_id;type:uuid;not null;index"`

	Transformer *Transformer `gorm:"foreignKey:TransformerID"`
}

func (Meter) TableName() string { return "meters" }
