package models

import (
	"fmt"
	"time"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// MinesweeperStat holds one user's cumulative play totals. All counters only
// ever grow, except WinStreak which resets to 0 on a win-less submission.
type MinesweeperStat struct {
	UserID               uint      `json:"user_id" gorm:"primaryKey"`
	GamesPlayed          int       `json:"games_played" gorm:"not null;default:0"`
	GamesWon             int       `json:"games_won" gorm:"not null;default:0"`
	BeginnerGamesWon     int       `json:"beginner_games_won" gorm:"not null;default:0"`
	IntermediateGamesWon int       `json:"intermediate_games_won" gorm:"not null;default:0"`
	ExpertGamesWon       int       `json:"expert_games_won" gorm:"not null;default:0"`
	TimePlayed           int       `json:"time_played" gorm:"not null;default:0"` // seconds
	CellsRevealed        int       `json:"cells_revealed" gorm:"not null;default:0"`
	WinStreak            int       `json:"win_streak" gorm:"not null;default:0"`
	LastPlayedAt         time.Time `json:"last_played_at" gorm:"not null"`
}

// TimePlayedFormatted formats total time played as __H __M __S.
func (s *MinesweeperStat) TimePlayedFormatted() string {
	formatted := ""

	hours := s.TimePlayed / SecondsPerHour
	minutes := (s.TimePlayed % SecondsPerHour) / SecondsPerMinute
	seconds := s.TimePlayed % SecondsPerMinute

	if hours > 0 {
		formatted += fmt.Sprintf("%dH ", hours)
	}
	if minutes > 0 {
		formatted += fmt.Sprintf("%dM ", minutes)
	}
	formatted += fmt.Sprintf("%dS", seconds)

	return formatted
}

// TimeSinceLastPlayed returns the time since the user last played in the
// largest applicable unit: __D, __H or __M.
func (s *MinesweeperStat) TimeSinceLastPlayed(now time.Time) string {
	seconds := int(now.Sub(s.LastPlayedAt).Round(time.Second).Seconds())

	days := seconds / SecondsPerDay
	hours := (seconds % SecondsPerDay) / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute

	if days > 0 {
		return fmt.Sprintf("%dD", days)
	}
	if hours > 0 {
		return fmt.Sprintf("%dH", hours)
	}
	return fmt.Sprintf("%dM", minutes)
}
