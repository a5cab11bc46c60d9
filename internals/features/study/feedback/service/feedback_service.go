package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
	userModel "studyku_backend/internals/features/users/users/model"
)

// SubmitFeedback menyimpan feedback (append-only) lalu memperbarui statistik
// berjalan user yang dibaca scorer.
func SubmitFeedback(ctx context.Context, db *gorm.DB, fb *fbModel.FeedbackModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			return err
		}
		if err := updateUserStats(ctx, tx, fb.FeedbackUserID, fb.FeedbackStressLevel); err != nil {
			// statistik gagal update bukan alasan menolak feedback
			log.Printf("[FEEDBACK] update statistik user %s gagal: %v", fb.FeedbackUserID, err)
		}
		return nil
	})
}

// updateUserStats: rata-rata stress dihitung (lama+baru)/2 — bukan running
// mean sebenarnya, tapi formula ini yang dipakai sejak awal dan nilai
// tersimpan mengikutinya. Completion rate dihitung ulang dari sesi 30 hari.
func updateUserStats(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stressLevel int) error {
	var user userModel.UserModel
	if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	newStress := (user.UserAverageStressLevel + float64(stressLevel)) / 2

	since := time.Now().AddDate(0, 0, -30)
	var total, completed int64
	if err := tx.Model(&schedModel.StudySessionModel{}).
		Where("study_session_user_id = ? AND study_session_start_time >= ?", userID, since).
		Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&schedModel.StudySessionModel{}).
		Where("study_session_user_id = ? AND study_session_start_time >= ? AND study_session_status = ?",
			userID, since, schedModel.SessionStatusCompleted).
		Count(&completed).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"user_average_stress_level": newStress,
		"user_updated_at":           time.Now(),
	}
	if total > 0 {
		updates["user_completion_rate"] = float64(completed) / float64(total)
	}

	return tx.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
