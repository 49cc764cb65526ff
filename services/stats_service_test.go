package services

import (
	"testing"
	"time"

	"davidsgames/minesweeper"
	"davidsgames/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginnerWin(seconds int, playedAt time.Time) minesweeper.GameResult {
	return minesweeper.GameResult{
		GamesPlayed:      1,
		GamesWon:         1,
		BeginnerGamesWon: 1,
		TimePlayed:       seconds,
		CellsRevealed:    71,
		LastPlayedAt:     playedAt,
	}
}

func TestSubmitStatsCreatesStatRowLazily(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	resp, err := service.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.Stats.UserID)
	assert.Equal(t, 1, resp.Stats.GamesPlayed)
	assert.Equal(t, 1, resp.Stats.GamesWon)
	assert.Equal(t, 1, resp.Stats.BeginnerGamesWon)
	assert.Equal(t, 18, resp.Stats.TimePlayed)
	assert.Equal(t, 71, resp.Stats.CellsRevealed)
	assert.Equal(t, 1, resp.Stats.WinStreak)

	var count int64
	db.Model(&models.MinesweeperStat{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitStatsAwardsAndPersistsAchievements(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	resp, err := service.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)

	var earnedTitles []string
	for _, a := range resp.NewAchievements {
		earnedTitles = append(earnedTitles, a.Title)
	}
	assert.Equal(t, []string{
		"Speedy Beginner",
		"Taste of Victory",
		"First Steps",
		"Welcome",
	}, earnedTitles)

	var associations int64
	db.Model(&models.UserMinesweeperAchievement{}).Where("user_id = ?", user.ID).Count(&associations)
	assert.EqualValues(t, 4, associations)
}

func TestSubmitStatsDoesNotReawardHeldAchievements(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := service.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)
	require.Len(t, first.NewAchievements, 4)

	// An identical second game qualifies for the same rules but everything
	// is already held.
	second, err := service.SubmitStats(user.ID, beginnerWin(18, playedAt.Add(time.Minute)))
	require.NoError(t, err)
	assert.Empty(t, second.NewAchievements)
	assert.Equal(t, 2, second.Stats.GamesPlayed)
	assert.Equal(t, 2, second.Stats.WinStreak)

	var associations int64
	db.Model(&models.UserMinesweeperAchievement{}).Where("user_id = ?", user.ID).Count(&associations)
	assert.EqualValues(t, 4, associations)
}

func TestSubmitStatsStreakResetOnLoss(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := service.SubmitStats(user.ID, beginnerWin(60, playedAt.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	loss := minesweeper.GameResult{
		GamesPlayed:   1,
		TimePlayed:    30,
		CellsRevealed: 12,
		LastPlayedAt:  playedAt.Add(time.Hour),
	}
	resp, err := service.SubmitStats(user.ID, loss)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Stats.WinStreak)
	assert.Equal(t, 5, resp.Stats.GamesPlayed)
	assert.Equal(t, 4, resp.Stats.GamesWon)
}

func TestSubmitStatsBatchedDeltaCrossesTiers(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	batch := minesweeper.GameResult{
		GamesPlayed:      30,
		GamesWon:         25,
		BeginnerGamesWon: 25,
		TimePlayed:       500,
		CellsRevealed:    1500,
		LastPlayedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	resp, err := service.SubmitStats(user.ID, batch)
	require.NoError(t, err)

	var earnedTitles []string
	for _, a := range resp.NewAchievements {
		earnedTitles = append(earnedTitles, a.Title)
	}

	// Jumping from zero to 25 beginner wins earns all three beginner tiers
	// at once, lowest first.
	assert.Equal(t, []string{
		"Taste of Victory",
		"First Steps",
		"Beginner Adept",
		"Beginner Master",
		"Boom!",
		"Welcome",
	}, earnedTitles)
}

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewStatsService(db)

	stats, err := service.GetStats(user.ID)
	require.NoError(t, err)
	assert.Nil(t, stats, "no stats before first submission")

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err = service.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)

	stats, err = service.GetStats(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.GamesPlayed)
}
