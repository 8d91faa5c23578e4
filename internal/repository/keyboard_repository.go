package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"keyboards-api/internal/model"
)

var ErrOwnerNotFound = errors.New("keyboard owner not found")

type KeyboardRepository struct {
	db *gorm.DB
}

func NewKeyboardRepository(db *gorm.DB) *KeyboardRepository {
	return &KeyboardRepository{db: db}
}

// Create inserts the keyboard only if its owner exists at insert time.
func (r *KeyboardRepository) Create(ctx context.Context, keyboard *model.Keyboard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := userExists(tx, keyboard.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrOwnerNotFound
		}
		if err := tx.Create(keyboard).Error; err != nil {
			return fmt.Errorf("create keyboard failed: %w", err)
		}
		return nil
	})
}

func (r *KeyboardRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Keyboard, error) {
	var keyboards []model.Keyboard
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&keyboards).Error; err != nil {
		return nil, fmt.Errorf("list keyboards failed: %w", err)
	}
	return keyboards, nil
}
