package repository

import (
	"github.com/hazuki/health-log-api/internal/codec"
	"github.com/hazuki/health-log-api/internal/models"
)

// FieldValueInput is one encoded field ready to be written alongside an
// entry. Name must already be normalized.
type FieldValueInput struct {
	Name     string
	DataType models.FieldDataType
	Columns  codec.Columns
}

// FieldTypeFilter holds listing options for field types
type FieldTypeFilter struct {
	UserID string
	// SortBy is one of "usage" (default), "name", "created"
	SortBy string
	// Category restricts to an exact category match when set
	Category *models.FieldCategory
}

// EntryRepository defines the interface for entry data access
type EntryRepository interface {
	// CreateWithValues creates an entry together with its field values in
	// a single transaction. Each input's field type is resolved (created
	// on first use, usage count incremented otherwise) inside the same
	// transaction; a failure on any field leaves nothing behind.
	CreateWithValues(entry *models.Entry, fields []FieldValueInput) error

	// List retrieves a user's entries ordered by occurrence time
	// ascending, with field values and their field types preloaded.
	List(userID string, limit, offset int) ([]models.Entry, error)
}

// FieldTypeRepository defines the interface for field-type data access
type FieldTypeRepository interface {
	// Resolve finds or creates the field type for (userID, name),
	// incrementing its usage count. The name is normalized first. An
	// existing record keeps its original data type.
	Resolve(userID, rawName string, dataType models.FieldDataType) (*models.FieldType, error)

	// List retrieves a user's field types per the filter
	List(filter FieldTypeFilter) ([]models.FieldType, error)

	// FindByID finds a field type by ID
	FindByID(id string) (*models.FieldType, error)

	// Update persists changes to a field type
	Update(fieldType *models.FieldType) error

	// Delete removes a field type and its field values. Deleting an
	// unknown id is a no-op.
	Delete(id string) error
}
