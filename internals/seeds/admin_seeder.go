package seeds

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"riseacademy_backend/internals/configs"
	userModel "riseacademy_backend/internals/features/users/user/model"
)

// SeedAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no admin exists yet. Missing env vars skip seeding.
func SeedAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.AdminEmail))
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("[WARNING] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing userModel.UserModel
	err := db.Where("user_is_admin = ?", true).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserEmail:    email,
		UserPassword: string(hash),
		UserFullName: configs.GetEnv("ADMIN_FULL_NAME", "Site Administrator"),
		UserIsAdmin:  true,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Seeded admin account %s", email)
	return nil
}
