package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hazuki/health-log-api/internal/codec"
	"github.com/hazuki/health-log-api/internal/constants"
	"github.com/hazuki/health-log-api/internal/models"
	"github.com/hazuki/health-log-api/internal/repository"
)

var (
	ErrOccurredAtRequired = errors.New("occurred_at is required")
	ErrFieldsRequired     = errors.New("at least one field is required")
	ErrFieldNameRequired  = errors.New("field name cannot be empty")
	ErrFieldValueRequired = errors.New("field value cannot be empty")
)

// EntryService handles entry recording and reading
type EntryService struct {
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(entryRepo repository.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// FieldInput is one (name, data type, value) tuple from the caller
type FieldInput struct {
	Name     string
	DataType models.FieldDataType
	Value    any
}

// RecordEntryInput represents input for recording an entry
type RecordEntryInput struct {
	UserID     string
	OccurredAt time.Time
	Fields     []FieldInput
}

// RecordEntry creates an entry and one field value per input, resolving each
// field's type along the way. Submitting the same name twice in one call
// counts twice and stores two values; callers are expected to filter blank
// fields, so a blank name or empty-string value is rejected outright.
func (s *EntryService) RecordEntry(input RecordEntryInput) (*models.Entry, error) {
	if input.OccurredAt.IsZero() {
		return nil, ErrOccurredAtRequired
	}
	if len(input.Fields) == 0 {
		return nil, ErrFieldsRequired
	}

	writes := make([]repository.FieldValueInput, 0, len(input.Fields))
	for _, field := range input.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return nil, ErrFieldNameRequired
		}
		if field.Value == nil {
			return nil, ErrFieldValueRequired
		}
		if str, ok := field.Value.(string); ok && str == "" {
			return nil, ErrFieldValueRequired
		}

		columns, err := codec.Encode(field.DataType, field.Value)
		if err != nil {
			return nil, err
		}

		writes = append(writes, repository.FieldValueInput{
			Name:     models.NormalizeFieldName(field.Name),
			DataType: field.DataType,
			Columns:  columns,
		})
	}

	entry := &models.Entry{
		UserID:     input.UserID,
		OccurredAt: input.OccurredAt,
		RawText:    nil, // structured entry, no raw text
	}

	if err := s.entryRepo.CreateWithValues(entry, writes); err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns a user's entries ordered by occurrence time ascending
func (s *EntryService) ListEntries(userID string, limit, offset int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = constants.DefaultEntryPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.entryRepo.List(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}
