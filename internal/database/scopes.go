package database

import (
	"gorm.io/gorm"

	"github.com/hazuki/health-log-api/internal/utils"
)

// Paginate applies limit/offset pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(params.Limit).Offset(params.Offset)
	}
}
