package minesweeper

import (
	"time"

	"davidsgames/models"
)

// GameResult is the counters contributed by one finished game submission.
// The client normally submits one game at a time, but every field is a
// count so batched submissions aggregate the same way.
type GameResult struct {
	GamesPlayed          int       `json:"games_played"`
	GamesWon             int       `json:"games_won"`
	BeginnerGamesWon     int       `json:"beginner_games_won"`
	IntermediateGamesWon int       `json:"intermediate_games_won"`
	ExpertGamesWon       int       `json:"expert_games_won"`
	TimePlayed           int       `json:"time_played"` // seconds
	CellsRevealed        int       `json:"cells_revealed"`
	LastPlayedAt         time.Time `json:"last_played_at"`
}

// ApplyResult merges a game result into the user's cumulative stats in
// place. The caller owns persistence and creates the zero-valued stat row
// for a user's first submission.
//
// The win streak treats the whole submission as a single event: any win in
// the delta extends the streak by one, a win-less delta resets it. A batch
// of several games therefore counts as one streak step.
func ApplyResult(stat *models.MinesweeperStat, delta GameResult) {
	stat.GamesPlayed += delta.GamesPlayed
	stat.GamesWon += delta.GamesWon
	stat.BeginnerGamesWon += delta.BeginnerGamesWon
	stat.IntermediateGamesWon += delta.IntermediateGamesWon
	stat.ExpertGamesWon += delta.ExpertGamesWon
	stat.TimePlayed += delta.TimePlayed
	stat.CellsRevealed += delta.CellsRevealed

	if delta.GamesWon > 0 {
		stat.WinStreak++
	} else {
		stat.WinStreak = 0
	}

	// Most recent submission wins; the client submits in order.
	stat.LastPlayedAt = delta.LastPlayedAt
}
