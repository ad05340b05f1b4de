package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one timestamped log event. OccurredAt is the user-supplied event
// time; CreatedAt is when the row was recorded. RawText is reserved for
// future free-text capture and stays null for structured entries.
type Entry struct {
	ID         string    `gorm:"type:uuid;primarykey" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`
	RawText    *string   `gorm:"type:text" json:"raw_text"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	FieldValues []FieldValue `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"field_values,omitempty"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
