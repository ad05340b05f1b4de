package repository

import (
	"gorm.io/gorm"

	"github.com/hazuki/health-log-api/internal/database"
	"github.com/hazuki/health-log-api/internal/models"
	"github.com/hazuki/health-log-api/internal/utils"
)

// GormEntryRepository is a GORM implementation of EntryRepository
type GormEntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &GormEntryRepository{db: db}
}

// CreateWithValues writes the entry, resolves each field's type, and inserts
// the field values as one transaction. Readers never observe a partial
// entry: either every row lands or none do.
func (r *GormEntryRepository) CreateWithValues(entry *models.Entry, fields []FieldValueInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		for _, field := range fields {
			fieldType, err := resolveFieldType(tx, entry.UserID, field.Name, field.DataType)
			if err != nil {
				return err
			}

			value := models.FieldValue{
				EntryID:      entry.ID,
				FieldTypeID:  fieldType.ID,
				TextValue:    field.Columns.Text,
				NumberValue:  field.Columns.Number,
				BooleanValue: field.Columns.Boolean,
			}
			if err := tx.Create(&value).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// List retrieves a user's entries ordered by occurrence time ascending.
// Ties on occurred_at are broken by creation time and id so paging stays
// stable. Unknown users simply get an empty slice.
func (r *GormEntryRepository) List(userID string, limit, offset int) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.
		Preload("FieldValues", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_values.created_at ASC")
		}).
		Preload("FieldValues.FieldType").
		Where("user_id = ?", userID).
		Order("occurred_at ASC").
		Order("created_at ASC").
		Order("id ASC").
		Scopes(database.Paginate(utils.PaginationParams{Limit: limit, Offset: offset})).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
