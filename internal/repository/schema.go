package repository

import (
	"fmt"

	"gorm.io/gorm"

	"keyboards-api/internal/model"
)

// EnsureSchema creates the user and keyboards tables if they are missing.
// It is safe to run on every boot.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Keyboard{}); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}
