package services

import (
	"errors"
	"fmt"

	"davidsgames/minesweeper"
	"davidsgames/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GuestUsername is the shared account used by guest logins.
const GuestUsername = "guest"

// SeedReferenceData upserts the static rows the application depends on:
// roles, the guest account and the achievement catalog. Safe to run on
// every boot.
func SeedReferenceData(db *gorm.DB) error {
	for _, name := range []string{models.DefaultUserRole, "admin"} {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", name, err)
		}
	}

	if err := seedGuestUser(db); err != nil {
		return err
	}

	// Seed in catalog order so autoincrement IDs match display order.
	for _, def := range minesweeper.OrderedDefinitions() {
		var achievement models.MinesweeperAchievement
		err := db.Where("key = ?", string(def.ID)).First(&achievement).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			achievement = models.MinesweeperAchievement{
				Key:         string(def.ID),
				Title:       def.Title,
				Description: def.Description,
				Color:       def.Color,
			}
			if err := db.Create(&achievement).Error; err != nil {
				return fmt.Errorf("failed to seed achievement %q: %w", def.ID, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load achievement %q: %w", def.ID, err)
		}

		// Catalog text may be revised between releases; keep the row current.
		achievement.Title = def.Title
		achievement.Description = def.Description
		achievement.Color = def.Color
		if err := db.Save(&achievement).Error; err != nil {
			return fmt.Errorf("failed to update achievement %q: %w", def.ID, err)
		}
	}

	return nil
}

func seedGuestUser(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("username = ?", GuestUsername).Count(&count)
	if count > 0 {
		return nil
	}

	// The guest account is only ever entered through GuestLogin, which does
	// not check the password, but the column is NOT NULL so hash something.
	hashed, err := bcrypt.GenerateFromPassword([]byte("guest-login-only"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	guest := models.User{
		Username:    GuestUsername,
		Password:    string(hashed),
		DisplayName: "Guest",
		Email:       "guest@davidsgames.local",
		RoleName:    models.DefaultUserRole,
		ImageURL:    models.DefaultUserImageURL,
	}
	if err := db.Create(&guest).Error; err != nil {
		return fmt.Errorf("failed to seed guest user: %w", err)
	}

	return nil
}
