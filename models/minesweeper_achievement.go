package models

// MinesweeperAchievement is static catalog data seeded at startup from the
// minesweeper package. Key is the stable typed identifier the evaluation
// engine works with; Title is the display name shown to players.
type MinesweeperAchievement struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	Key         string `json:"-" gorm:"size:50;uniqueIndex;not null"`
	Title       string `json:"title" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description" gorm:"not null"`
	Color       string `json:"color" gorm:"not null"`
}
