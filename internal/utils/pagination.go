package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hazuki/health-log-api/internal/constants"
)

// PaginationParams holds plain limit/offset pagination. There is no
// enforced maximum limit; that is the caller's responsibility.
type PaginationParams struct {
	Limit  int
	Offset int
}

// GetPaginationParams extracts limit/offset from the request query.
// Missing or unusable values fall back to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultEntryPageSize)))
	if err != nil || limit <= 0 {
		limit = constants.DefaultEntryPageSize
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}
