package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldValue attaches one typed value to one entry. Exactly one of the
// three value columns is set, chosen by the field type's data type.
type FieldValue struct {
	ID           string    `gorm:"type:uuid;primarykey" json:"id"`
	EntryID      string    `gorm:"type:uuid;not null;index" json:"entry_id"`
	FieldTypeID  string    `gorm:"type:uuid;not null;index" json:"field_type_id"`
	TextValue    *string   `gorm:"type:text" json:"text_value"`
	NumberValue  *float64  `gorm:"type:numeric" json:"number_value"`
	BooleanValue *bool     `json:"boolean_value"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Entry     Entry     `gorm:"foreignKey:EntryID" json:"-"`
	FieldType FieldType `gorm:"foreignKey:FieldTypeID" json:"field_type,omitempty"`
}

func (v *FieldValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
