package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

// historyRepository: implementasi engine.HistoryReader di atas GORM.
type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *historyRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) SessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]schedModel.StudySessionModel, error) {
	var sessions []schedModel.StudySessionModel
	err := r.db.WithContext(ctx).
		Where("study_session_user_id = ? AND study_session_start_time >= ?", userID, since).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *historyRepository) FeedbackSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]fbModel.FeedbackModel, error) {
	var feedback []fbModel.FeedbackModel
	err := r.db.WithContext(ctx).
		Where("feedback_user_id = ? AND feedback_created_at >= ?", userID, since).
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}
