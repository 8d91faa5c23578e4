package model

import "time"

const (
	EventUserCreated     = "user.created"
	EventKeyboardCreated = "keyboard.created"
)

// RecordEvent is published after a user or keyboard row is committed.
type RecordEvent struct {
	Type       string    `json:"type"`
	UserID     uint      `json:"user_id"`
	KeyboardID uint      `json:"keyboard_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
