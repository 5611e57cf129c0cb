package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"riseacademy_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			res := db.Unscoped().
				Where("expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d expired tokens", res.RowsAffected)
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}
