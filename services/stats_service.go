package services

import (
	"errors"
	"time"

	"davidsgames/minesweeper"
	"davidsgames/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// StatsResponse is the payload returned after a stat submission: the updated
// cumulative totals and whatever achievements this submission unlocked.
type StatsResponse struct {
	Stats           *models.MinesweeperStat         `json:"stats"`
	NewAchievements []models.MinesweeperAchievement `json:"new_achievements"`
}

// SubmitStats processes one finished-game submission end to end: merge the
// delta into the user's cumulative stats, evaluate achievements against the
// updated totals, and persist both. Stats row, held-achievement snapshot and
// new associations all live in one transaction so concurrent submissions for
// the same user can't drop an update.
func (s *StatsService) SubmitStats(userID uint, delta minesweeper.GameResult) (*StatsResponse, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Lazily create the stats row on first submission.
	var stat models.MinesweeperStat
	err := tx.Where("user_id = ?", userID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stat = models.MinesweeperStat{UserID: userID, LastPlayedAt: delta.LastPlayedAt}
		if err := tx.Create(&stat).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	} else if err != nil {
		tx.Rollback()
		return nil, err
	}

	minesweeper.ApplyResult(&stat, delta)

	if err := tx.Save(&stat).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	held, err := s.heldAchievements(tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	earned := minesweeper.Evaluate(held, &stat, delta)

	newAchievements := []models.MinesweeperAchievement{}
	now := time.Now().UTC()
	for _, def := range earned {
		var row models.MinesweeperAchievement
		if err := tx.Where("key = ?", string(def.ID)).First(&row).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		association := models.UserMinesweeperAchievement{
			UserID:        userID,
			AchievementID: row.ID,
			AchievedAt:    now,
		}
		if err := tx.Create(&association).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		newAchievements = append(newAchievements, row)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &StatsResponse{Stats: &stat, NewAchievements: newAchievements}, nil
}

// GetStats returns a user's cumulative stats, or nil if they haven't
// played yet.
func (s *StatsService) GetStats(userID uint) (*models.MinesweeperStat, error) {
	var stat models.MinesweeperStat
	err := s.db.Where("user_id = ?", userID).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (s *StatsService) heldAchievements(tx *gorm.DB, userID uint) (map[minesweeper.AchievementID]bool, error) {
	var keys []string
	err := tx.Model(&models.MinesweeperAchievement{}).
		Joins("JOIN user_minesweeper_achievements uma ON uma.achievement_id = minesweeper_achievements.id").
		Where("uma.user_id = ?", userID).
		Pluck("minesweeper_achievements.key", &keys).Error
	if err != nil {
		return nil, err
	}

	held := make(map[minesweeper.AchievementID]bool, len(keys))
	for _, key := range keys {
		held[minesweeper.AchievementID(key)] = true
	}
	return held, nil
}
