package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"davidsgames/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database migrated and seeded like the
// real one. Each test gets its own named database so they can't see each
// other's rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.MinesweeperScore{},
		&models.MinesweeperStat{},
		&models.MinesweeperAchievement{},
		&models.UserMinesweeperAchievement{},
	))
	require.NoError(t, SeedReferenceData(db))

	return db
}

// createTestUser inserts a user directly, bypassing the auth flow.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:    username,
		Password:    "not-a-real-hash",
		DisplayName: username,
		Email:       username + "@test.local",
		RoleName:    models.DefaultUserRole,
		ImageURL:    models.DefaultUserImageURL,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createScore inserts a score row with an explicit submission time.
func createScore(t *testing.T, db *gorm.DB, userID uint, level string, seconds int, submittedAt time.Time) *models.MinesweeperScore {
	t.Helper()

	score := models.MinesweeperScore{
		UserID:      userID,
		Time:        seconds,
		Level:       level,
		SubmittedAt: submittedAt,
	}
	require.NoError(t, db.Create(&score).Error)
	return &score
}
