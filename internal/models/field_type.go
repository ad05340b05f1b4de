package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FieldDataType string

const (
	DataTypeBoolean    FieldDataType = "boolean"
	DataTypeScale1To10 FieldDataType = "scale_1_10"
	DataTypeSeverity   FieldDataType = "severity"
	DataTypeNumber     FieldDataType = "number"
	DataTypeText       FieldDataType = "text"
	// DataTypeDuration is declared for schema parity but has no value
	// encoding yet; submitting it is rejected by the codec.
	DataTypeDuration FieldDataType = "duration"
)

type FieldCategory string

const (
	CategorySymptom    FieldCategory = "symptom"
	CategoryFood       FieldCategory = "food"
	CategoryMedication FieldCategory = "medication"
	CategoryContext    FieldCategory = "context"
	CategoryOther      FieldCategory = "other"
)

// IsValidCategory reports whether s is one of the known categories.
func IsValidCategory(s string) bool {
	switch FieldCategory(s) {
	case CategorySymptom, CategoryFood, CategoryMedication, CategoryContext, CategoryOther:
		return true
	}
	return false
}

// NormalizeFieldName applies the canonical field-name normalization:
// surrounding whitespace trimmed, lower-cased. Lookup and storage always go
// through this, so "  Cramping " and "cramping" resolve to the same field.
func NormalizeFieldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FieldType is a user-scoped tracking dimension, e.g. "cramping": severity.
// A user has at most one field type per normalized name; the data type is
// fixed on first use. Config holds reserved per-field options (bounds,
// units) and is stored but not interpreted.
type FieldType struct {
	ID         string          `gorm:"type:uuid;primarykey" json:"id"`
	UserID     string          `gorm:"type:uuid;not null;uniqueIndex:idx_field_types_user_name" json:"user_id"`
	Name       string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_field_types_user_name" json:"name"`
	DataType   FieldDataType   `gorm:"type:varchar(20);not null" json:"data_type"`
	Category   *FieldCategory  `gorm:"type:varchar(20)" json:"category"`
	Config     json.RawMessage `gorm:"type:jsonb" json:"config"`
	UsageCount int             `gorm:"not null;default:0" json:"usage_count"`
	CreatedAt  time.Time       `json:"created_at"`

	// Relations
	User   User         `gorm:"foreignKey:UserID" json:"-"`
	Values []FieldValue `gorm:"foreignKey:FieldTypeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *FieldType) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Config == nil {
		f.Config = json.RawMessage("{}")
	}
	return nil
}
