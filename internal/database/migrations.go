package database

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hazuki/health-log-api/internal/models"
)

// EnsureDefaultUser creates the fixed principal's user row if it is missing.
// Identity resolution is an external concern; until an auth layer exists
// every write is scoped to this user, and the foreign keys on entries and
// field types need the row to be present.
func EnsureDefaultUser(id, email string) error {
	user := models.User{ID: id, Email: email}
	if err := DB.Where("id = ?", id).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("failed to ensure default user: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("Default user ready")
	return nil
}
