package minesweeper

import (
	"testing"
	"time"

	"davidsgames/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyResultMergesAllCounters(t *testing.T) {
	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	stat := models.MinesweeperStat{UserID: 1}
	ApplyResult(&stat, GameResult{
		GamesPlayed:      1,
		GamesWon:         1,
		BeginnerGamesWon: 1,
		TimePlayed:       18,
		CellsRevealed:    81,
		LastPlayedAt:     playedAt,
	})

	assert.Equal(t, 1, stat.GamesPlayed)
	assert.Equal(t, 1, stat.GamesWon)
	assert.Equal(t, 1, stat.BeginnerGamesWon)
	assert.Equal(t, 0, stat.IntermediateGamesWon)
	assert.Equal(t, 0, stat.ExpertGamesWon)
	assert.Equal(t, 18, stat.TimePlayed)
	assert.Equal(t, 81, stat.CellsRevealed)
	assert.Equal(t, 1, stat.WinStreak)
	assert.Equal(t, playedAt, stat.LastPlayedAt)
}

func TestApplyResultAccumulates(t *testing.T) {
	stat := models.MinesweeperStat{
		UserID:           1,
		GamesPlayed:      10,
		GamesWon:         4,
		BeginnerGamesWon: 2,
		TimePlayed:       500,
		CellsRevealed:    900,
		WinStreak:        2,
	}

	ApplyResult(&stat, GameResult{
		GamesPlayed:          3,
		GamesWon:             2,
		BeginnerGamesWon:     1,
		IntermediateGamesWon: 1,
		TimePlayed:           250,
		CellsRevealed:        400,
	})

	assert.Equal(t, 13, stat.GamesPlayed)
	assert.Equal(t, 6, stat.GamesWon)
	assert.Equal(t, 3, stat.BeginnerGamesWon)
	assert.Equal(t, 1, stat.IntermediateGamesWon)
	assert.Equal(t, 750, stat.TimePlayed)
	assert.Equal(t, 1300, stat.CellsRevealed)
}

func TestApplyResultWinStreak(t *testing.T) {
	stat := models.MinesweeperStat{UserID: 1, WinStreak: 7}

	// A win-less submission resets the streak.
	ApplyResult(&stat, GameResult{GamesPlayed: 1})
	assert.Equal(t, 0, stat.WinStreak)

	// Each winning submission extends it by one...
	ApplyResult(&stat, GameResult{GamesPlayed: 1, GamesWon: 1, BeginnerGamesWon: 1})
	assert.Equal(t, 1, stat.WinStreak)

	// ...even a batched submission with several wins counts once.
	ApplyResult(&stat, GameResult{GamesPlayed: 5, GamesWon: 5, BeginnerGamesWon: 5})
	assert.Equal(t, 2, stat.WinStreak)
}

func TestApplyResultOverwritesLastPlayedAt(t *testing.T) {
	earlier := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	stat := models.MinesweeperStat{UserID: 1, LastPlayedAt: earlier}
	ApplyResult(&stat, GameResult{GamesPlayed: 1, LastPlayedAt: later})

	assert.Equal(t, later, stat.LastPlayedAt)
}
