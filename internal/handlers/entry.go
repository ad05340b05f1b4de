package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hazuki/health-log-api/internal/dto"
	apierrors "github.com/hazuki/health-log-api/internal/errors"
	"github.com/hazuki/health-log-api/internal/middleware"
	"github.com/hazuki/health-log-api/internal/models"
	"github.com/hazuki/health-log-api/internal/services"
	"github.com/hazuki/health-log-api/internal/utils"
)

type EntryHandler struct {
	entryService *services.EntryService
}

func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry records a new entry with its field values
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.InternalError(c, "No user in request context")
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		apierrors.BadRequest(c, "occurred_at must be an ISO-8601 timestamp")
		return
	}

	fields := make([]services.FieldInput, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = services.FieldInput{
			Name:     f.Name,
			DataType: models.FieldDataType(f.DataType),
			Value:    f.Value,
		}
	}

	entry, err := h.entryService.RecordEntry(services.RecordEntryInput{
		UserID:     userID,
		OccurredAt: occurredAt,
		Fields:     fields,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry_id": entry.ID})
}

// ListEntries returns the current user's entries with decoded field values
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.InternalError(c, "No user in request context")
		return
	}

	params := utils.GetPaginationParams(c)

	entries, err := h.entryService.ListEntries(userID, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}
