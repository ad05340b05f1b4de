package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hazuki/health-log-api/internal/errors"
	"github.com/hazuki/health-log-api/internal/middleware"
	"github.com/hazuki/health-log-api/internal/services"
)

type FieldTypeHandler struct {
	fieldTypeService *services.FieldTypeService
}

func NewFieldTypeHandler(fieldTypeService *services.FieldTypeService) *FieldTypeHandler {
	return &FieldTypeHandler{fieldTypeService: fieldTypeService}
}

// ListFieldTypes returns the current user's field types, sorted and
// optionally filtered by category
func (h *FieldTypeHandler) ListFieldTypes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.InternalError(c, "No user in request context")
		return
	}

	sortBy := c.DefaultQuery("sortBy", "usage")
	category := c.Query("category")

	fieldTypes, err := h.fieldTypeService.ListFieldTypes(userID, sortBy, category)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"field_types": fieldTypes})
}

// UpdateFieldType renames and/or recategorizes a field type. The raw body
// is inspected so that absent keys are left untouched while explicit nulls
// clear the category.
func (h *FieldTypeHandler) UpdateFieldType(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	id, _ := raw["id"].(string)

	input := services.UpdateFieldTypeInput{}
	if value, ok := raw["name"]; ok {
		name, ok := value.(string)
		if !ok {
			apierrors.BadRequest(c, "name must be a string")
			return
		}
		input.Name = &name
	}
	if value, ok := raw["category"]; ok {
		if value == nil {
			empty := ""
			input.Category = &empty
		} else {
			category, ok := value.(string)
			if !ok {
				apierrors.BadRequest(c, "category must be a string")
				return
			}
			input.Category = &category
		}
	}

	fieldType, err := h.fieldTypeService.UpdateFieldType(id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"field_type": fieldType})
}

// DeleteFieldType deletes a field type and all of its stored values.
// Succeeds whether or not the id existed.
func (h *FieldTypeHandler) DeleteFieldType(c *gin.Context) {
	id := c.Query("id")

	if err := h.fieldTypeService.DeleteFieldType(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
