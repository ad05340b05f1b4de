package dto

import (
	"time"

	"github.com/hazuki/health-log-api/internal/codec"
	"github.com/hazuki/health-log-api/internal/models"
)

// FieldInputDTO is one field of an entry submission
type FieldInputDTO struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Value    any    `json:"value"`
}

// CreateEntryRequest is the body of POST /api/entries
type CreateEntryRequest struct {
	OccurredAt string          `json:"occurred_at" binding:"required"`
	Fields     []FieldInputDTO `json:"fields"`
}

// EntryFieldDTO is one decoded field value in an entry view
type EntryFieldDTO struct {
	Name     string                `json:"name"`
	Category *models.FieldCategory `json:"category"`
	DataType models.FieldDataType  `json:"data_type"`
	Value    any                   `json:"value"`
}

// EntryViewDTO is an entry joined with its decoded field values
type EntryViewDTO struct {
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	RawText    *string         `json:"raw_text"`
	CreatedAt  time.Time       `json:"created_at"`
	Fields     []EntryFieldDTO `json:"fields"`
}

// EntryListResponse is the body of GET /api/entries
type EntryListResponse struct {
	Entries []EntryViewDTO `json:"entries"`
}

// ToEntryViewDTO converts an Entry with preloaded field values into its view
func ToEntryViewDTO(entry models.Entry) EntryViewDTO {
	view := EntryViewDTO{
		ID:         entry.ID,
		OccurredAt: entry.OccurredAt,
		RawText:    entry.RawText,
		CreatedAt:  entry.CreatedAt,
		Fields:     make([]EntryFieldDTO, len(entry.FieldValues)),
	}

	for i, value := range entry.FieldValues {
		view.Fields[i] = EntryFieldDTO{
			Name:     value.FieldType.Name,
			Category: value.FieldType.Category,
			DataType: value.FieldType.DataType,
			Value:    codec.Decode(value),
		}
	}

	return view
}

// ToEntryListResponse converts a slice of entries into the list response
func ToEntryListResponse(entries []models.Entry) EntryListResponse {
	views := make([]EntryViewDTO, len(entries))
	for i, entry := range entries {
		views[i] = ToEntryViewDTO(entry)
	}
	return EntryListResponse{Entries: views}
}
