package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hazuki/health-log-api/internal/models"
	"github.com/hazuki/health-log-api/internal/repository"
)

var (
	ErrFieldTypeNotFound   = errors.New("field type not found")
	ErrFieldTypeIDRequired = errors.New("field type id is required")
	ErrDuplicateFieldType  = errors.New("a field type with this name already exists")
	ErrInvalidCategory     = errors.New("unknown category")
)

// FieldTypeService handles field-type queries and maintenance
type FieldTypeService struct {
	fieldTypeRepo repository.FieldTypeRepository
}

// NewFieldTypeService creates a new FieldTypeService
func NewFieldTypeService(fieldTypeRepo repository.FieldTypeRepository) *FieldTypeService {
	return &FieldTypeService{fieldTypeRepo: fieldTypeRepo}
}

// Resolve finds or creates the field type for a raw name, bumping its usage
// count. Existing records keep their original data type regardless of what
// the caller declares.
func (s *FieldTypeService) Resolve(userID, rawName string, dataType models.FieldDataType) (*models.FieldType, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, ErrFieldNameRequired
	}

	fieldType, err := s.fieldTypeRepo.Resolve(userID, rawName, dataType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field type: %w", err)
	}
	return fieldType, nil
}

// ListFieldTypes returns a user's field types. sortBy is "usage" (default),
// "name" or "created"; an unrecognized sort falls back to usage order. The
// category filter applies only when it names a known category — "all",
// empty, and unknown values leave the list unfiltered.
func (s *FieldTypeService) ListFieldTypes(userID, sortBy, category string) ([]models.FieldType, error) {
	filter := repository.FieldTypeFilter{
		UserID: userID,
		SortBy: sortBy,
	}

	if category != "" && category != "all" && models.IsValidCategory(category) {
		c := models.FieldCategory(category)
		filter.Category = &c
	}

	fieldTypes, err := s.fieldTypeRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list field types: %w", err)
	}
	return fieldTypes, nil
}

// UpdateFieldTypeInput represents a partial field-type update. Nil means
// "leave untouched"; a pointer to the empty string clears the category.
type UpdateFieldTypeInput struct {
	Name     *string
	Category *string
}

// UpdateFieldType renames and/or recategorizes a field type. The new name is
// normalized; a collision with another field type's name is rejected, both
// records left as they were. The data type is deliberately not updatable —
// stored values already committed to a column.
func (s *FieldTypeService) UpdateFieldType(id string, input UpdateFieldTypeInput) (*models.FieldType, error) {
	if id == "" {
		return nil, ErrFieldTypeIDRequired
	}

	fieldType, err := s.fieldTypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldTypeNotFound
		}
		return nil, fmt.Errorf("failed to find field type: %w", err)
	}

	if input.Name != nil {
		name := models.NormalizeFieldName(*input.Name)
		if name == "" {
			return nil, ErrFieldNameRequired
		}
		fieldType.Name = name
	}
	if input.Category != nil {
		if *input.Category == "" {
			fieldType.Category = nil
		} else {
			if !models.IsValidCategory(*input.Category) {
				return nil, ErrInvalidCategory
			}
			category := models.FieldCategory(*input.Category)
			fieldType.Category = &category
		}
	}

	if err := s.fieldTypeRepo.Update(fieldType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFieldType
		}
		return nil, fmt.Errorf("failed to update field type: %w", err)
	}

	return fieldType, nil
}

// DeleteFieldType removes a field type and its stored values. Entries keep
// existing with a shorter field list. Deleting an id that does not exist
// succeeds; deletion is idempotent.
func (s *FieldTypeService) DeleteFieldType(id string) error {
	if id == "" {
		return ErrFieldTypeIDRequired
	}

	if err := s.fieldTypeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete field type: %w", err)
	}
	return nil
}
