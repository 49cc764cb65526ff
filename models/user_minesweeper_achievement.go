package models

import (
	"time"
)

// UserMinesweeperAchievement records that a user earned an achievement.
// Created exactly once per (user, achievement) pair, never updated.
type UserMinesweeperAchievement struct {
	UserID        uint      `json:"user_id" gorm:"primaryKey"`
	AchievementID uint      `json:"achievement_id" gorm:"primaryKey"`
	AchievedAt    time.Time `json:"achieved_at" gorm:"not null"`

	// Relationships
	User        User                   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Achievement MinesweeperAchievement `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
