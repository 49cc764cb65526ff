package services

import (
	"errors"

	"davidsgames/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateUserRequest struct {
	DisplayName string `json:"display_name" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	ImageURL    string `json:"image_url"`
	Country     string `json:"country" binding:"omitempty,max=30"`
	Bio         string `json:"bio"`
}

// UserProfile is a user's public page: the account plus their minesweeper
// stats and earned achievements.
type UserProfile struct {
	User         *models.User                    `json:"user"`
	Stats        *models.MinesweeperStat         `json:"stats"`
	Achievements []models.MinesweeperAchievement `json:"achievements"`
}

// ListUsers returns all users ordered by display name, optionally filtered
// by a display-name substring.
func (s *UserService) ListUsers(search string) ([]models.User, error) {
	var users []models.User
	query := s.db.Order("display_name")
	if search != "" {
		query = query.Where("display_name LIKE ?", "%"+search+"%")
	}
	err := query.Find(&users).Error
	return users, err
}

// GetUserProfile loads a user with their stats and achievements.
// Stats is nil until the user submits their first game.
func (s *UserService) GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	profile := &UserProfile{User: &user}

	var stat models.MinesweeperStat
	err := s.db.Where("user_id = ?", userID).First(&stat).Error
	if err == nil {
		profile.Stats = &stat
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Catalog order, same as the seed order.
	err = s.db.Model(&models.MinesweeperAchievement{}).
		Joins("JOIN user_minesweeper_achievements uma ON uma.achievement_id = minesweeper_achievements.id").
		Where("uma.user_id = ?", userID).
		Order("minesweeper_achievements.id").
		Find(&profile.Achievements).Error
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateUser applies the provided non-empty fields to the user's own record.
func (s *UserService) UpdateUser(userID uint, req *UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImageURL != "" {
		user.ImageURL = req.ImageURL
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes the account and everything hanging off it: scores,
// stats and achievement associations go with the user.
func (s *UserService) DeleteUser(userID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("user_id = ?", userID).Delete(&models.UserMinesweeperAchievement{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.MinesweeperScore{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.MinesweeperStat{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.User{}, userID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
