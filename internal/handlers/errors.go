package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hazuki/health-log-api/internal/codec"
	apierrors "github.com/hazuki/health-log-api/internal/errors"
	"github.com/hazuki/health-log-api/internal/services"
)

// handleServiceError maps service-level errors onto HTTP responses. Storage
// failures are logged here and surface only as a generic internal error.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOccurredAtRequired),
		errors.Is(err, services.ErrFieldsRequired),
		errors.Is(err, services.ErrFieldNameRequired),
		errors.Is(err, services.ErrFieldValueRequired),
		errors.Is(err, services.ErrFieldTypeIDRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, codec.ErrInvalidValue):
		apierrors.BadRequest(c, err.Error())

	case errors.Is(err, services.ErrFieldTypeNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, services.ErrDuplicateFieldType):
		apierrors.Conflict(c, err.Error())

	case errors.Is(err, codec.ErrUnsupportedDataType):
		logrus.WithError(err).Error("Unsupported data type reached the codec")
		apierrors.UnsupportedDataType(c, err.Error())

	default:
		logrus.WithError(err).Error("Unhandled internal error")
		apierrors.InternalError(c, "")
	}
}
