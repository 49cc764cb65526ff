package services

import (
	"testing"
	"time"

	"davidsgames/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "zoe")
	createTestUser(t, db, "adam")
	service := NewUserService(db)

	users, err := service.ListUsers("")
	require.NoError(t, err)
	// Guest is seeded alongside the two test users.
	require.Len(t, users, 3)
	assert.Equal(t, "Guest", users[0].DisplayName)
	assert.Equal(t, "adam", users[1].DisplayName)
	assert.Equal(t, "zoe", users[2].DisplayName)

	filtered, err := service.ListUsers("zo")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "zoe", filtered[0].Username)
}

func TestGetUserProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewUserService(db)
	statsService := NewStatsService(db)

	// Before playing: no stats, no achievements.
	profile, err := service.GetUserProfile(user.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.Stats)
	assert.Empty(t, profile.Achievements)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err = statsService.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)

	profile, err = service.GetUserProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.Stats)
	assert.Equal(t, 1, profile.Stats.GamesPlayed)

	// Achievements come back in catalog (seed) order, not earn order.
	var titles []string
	for _, a := range profile.Achievements {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{
		"Speedy Beginner",
		"Taste of Victory",
		"First Steps",
		"Welcome",
	}, titles)
}

func TestUpdateUserAppliesOnlyProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewUserService(db)

	updated, err := service.UpdateUser(user.ID, &UpdateUserRequest{
		Country: "Canada",
		Bio:     "Flags before drags",
	})
	require.NoError(t, err)

	assert.Equal(t, "Canada", updated.Country)
	assert.Equal(t, "Flags before drags", updated.Bio)
	assert.Equal(t, user.DisplayName, updated.DisplayName)
	assert.Equal(t, user.Email, updated.Email)
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player1")
	service := NewUserService(db)
	statsService := NewStatsService(db)

	playedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := statsService.SubmitStats(user.ID, beginnerWin(18, playedAt))
	require.NoError(t, err)
	createScore(t, db, user.ID, "beginner", 18, playedAt)

	require.NoError(t, service.DeleteUser(user.ID))

	var users, stats, scores, associations int64
	db.Model(&models.User{}).Where("id = ?", user.ID).Count(&users)
	db.Model(&models.MinesweeperStat{}).Where("user_id = ?", user.ID).Count(&stats)
	db.Model(&models.MinesweeperScore{}).Where("user_id = ?", user.ID).Count(&scores)
	db.Model(&models.UserMinesweeperAchievement{}).Where("user_id = ?", user.ID).Count(&associations)

	assert.Zero(t, users)
	assert.Zero(t, stats)
	assert.Zero(t, scores)
	assert.Zero(t, associations)

	// The achievement catalog itself is untouched.
	var catalog int64
	db.Model(&models.MinesweeperAchievement{}).Count(&catalog)
	assert.EqualValues(t, 23, catalog)
}
