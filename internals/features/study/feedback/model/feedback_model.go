package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedbackCompletionCompleted  = "completed"
	FeedbackCompletionPartial    = "partial"
	FeedbackCompletionNotStarted = "not_started"
)

// FeedbackModel append-only: tidak pernah di-update atau dihapus.
type FeedbackModel struct {
	FeedbackID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:feedback_id" json:"feedback_id"`
	FeedbackUserID    uuid.UUID `gorm:"type:uuid;not null;column:feedback_user_id;index" json:"feedback_user_id"`
	FeedbackSubjectID uuid.UUID `gorm:"type:uuid;not null;column:feedback_subject_id" json:"feedback_subject_id"`
	FeedbackSessionID uuid.UUID `gorm:"type:uuid;not null;column:feedback_session_id" json:"feedback_session_id"`

	FeedbackStressLevel      int     `gorm:"not null;column:feedback_stress_level" json:"feedback_stress_level"`           // 1..5
	FeedbackCompletionStatus string  `gorm:"type:varchar(15);not null;column:feedback_completion_status" json:"feedback_completion_status"`
	FeedbackDifficultyRating int     `gorm:"not null;column:feedback_difficulty_rating" json:"feedback_difficulty_rating"` // 1..5
	FeedbackComments         *string `gorm:"type:text;column:feedback_comments" json:"feedback_comments,omitempty"`
	FeedbackSuggestions      *string `gorm:"type:text;column:feedback_suggestions" json:"feedback_suggestions,omitempty"`

	FeedbackCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:feedback_created_at;index" json:"feedback_created_at"`
}

func (FeedbackModel) TableName() string { return "feedback" }
