package models

import (
	"time"
)

type MinesweeperScore struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Time        int       `json:"time" gorm:"not null"` // seconds
	Level       string    `json:"level" gorm:"size:30;not null;index"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null"`

	// Relationships
	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
