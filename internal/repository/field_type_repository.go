package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hazuki/health-log-api/internal/models"
)

// GormFieldTypeRepository is a GORM implementation of FieldTypeRepository
type GormFieldTypeRepository struct {
	db *gorm.DB
}

// NewFieldTypeRepository creates a new FieldTypeRepository
func NewFieldTypeRepository(db *gorm.DB) FieldTypeRepository {
	return &GormFieldTypeRepository{db: db}
}

// Resolve finds or creates the canonical field type for (userID, name)
func (r *GormFieldTypeRepository) Resolve(userID, rawName string, dataType models.FieldDataType) (*models.FieldType, error) {
	var fieldType *models.FieldType
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		fieldType, err = resolveFieldType(tx, userID, rawName, dataType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fieldType, nil
}

// resolveFieldType is the find-or-create core shared with the entry write
// path, which runs it inside its own transaction. Lookup and insert are not
// atomic on their own; the unique index on (user_id, name) arbitrates
// concurrent creations of the same name, and a losing insert is converted
// into a re-read plus increment instead of an error.
func resolveFieldType(tx *gorm.DB, userID, rawName string, dataType models.FieldDataType) (*models.FieldType, error) {
	name := models.NormalizeFieldName(rawName)

	var existing models.FieldType
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
	if err == nil {
		return incrementUsage(tx, &existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return createFieldType(tx, userID, name, dataType)
}

// createFieldType inserts a brand-new field type after a lookup miss. When
// the insert loses a creation race on the (user_id, name) unique index, the
// winning record is re-read and incremented instead of surfacing the
// conflict.
func createFieldType(tx *gorm.DB, userID, name string, dataType models.FieldDataType) (*models.FieldType, error) {
	created := models.FieldType{
		UserID:     userID,
		Name:       name,
		DataType:   dataType,
		UsageCount: 1,
	}

	// The savepoint keeps the enclosing transaction usable when the
	// insert hits the unique index (Postgres aborts the transaction on a
	// constraint violation otherwise).
	if err := tx.SavePoint("create_field_type").Error; err != nil {
		return nil, err
	}
	err := tx.Create(&created).Error
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	if err := tx.RollbackTo("create_field_type").Error; err != nil {
		return nil, err
	}

	// Someone else created it between our lookup and insert. The existing
	// record wins, data type included; this use still counts.
	var winner models.FieldType
	if err := tx.Where("user_id = ? AND name = ?", userID, name).First(&winner).Error; err != nil {
		return nil, err
	}
	return incrementUsage(tx, &winner)
}

func incrementUsage(tx *gorm.DB, fieldType *models.FieldType) (*models.FieldType, error) {
	err := tx.Model(fieldType).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}

	if err := tx.First(fieldType, "id = ?", fieldType.ID).Error; err != nil {
		return nil, err
	}
	return fieldType, nil
}

// List retrieves a user's field types with sorting and category filtering
func (r *GormFieldTypeRepository) List(filter FieldTypeFilter) ([]models.FieldType, error) {
	query := r.db.Where("user_id = ?", filter.UserID)

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	switch filter.SortBy {
	case "name":
		query = query.Order("name ASC")
	case "created":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("usage_count DESC").Order("name ASC")
	}

	var fieldTypes []models.FieldType
	if err := query.Find(&fieldTypes).Error; err != nil {
		return nil, err
	}
	return fieldTypes, nil
}

// FindByID finds a field type by ID
func (r *GormFieldTypeRepository) FindByID(id string) (*models.FieldType, error) {
	var fieldType models.FieldType
	if err := r.db.First(&fieldType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fieldType, nil
}

// Update persists changes to a field type. A rename that collides with
// another field type's name fails with gorm.ErrDuplicatedKey.
func (r *GormFieldTypeRepository) Update(fieldType *models.FieldType) error {
	return r.db.Save(fieldType).Error
}

// Delete removes a field type and cascades to its field values. Entries
// referencing those values are left in place.
func (r *GormFieldTypeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_type_id = ?", id).Delete(&models.FieldValue{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.FieldType{}, "id = ?", id).Error
	})
}
