package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusPending    = "pending"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
	SessionStatusMissed     = "missed"
)

// StudySessionModel: satu sesi belajar hasil alokasi, menempel ke satu slot waktu.
// Kolom subject_* adalah snapshot denormalisasi saat generate — edit subject belakangan
// tidak mengubah sesi yang sudah dibuat.
type StudySessionModel struct {
	// PK & relasi
	StudySessionID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:study_session_id" json:"study_session_id"`
	StudySessionScheduleID *uuid.UUID `gorm:"type:uuid;column:study_session_schedule_id;index" json:"study_session_schedule_id,omitempty"`
	StudySessionUserID     uuid.UUID  `gorm:"type:uuid;not null;column:study_session_user_id;index" json:"study_session_user_id"`
	StudySessionSubjectID  uuid.UUID  `gorm:"type:uuid;not null;column:study_session_subject_id" json:"study_session_subject_id"`

	// Snapshot subject
	StudySessionSubjectName       string `gorm:"type:varchar(120);not null;column:study_session_subject_name" json:"study_session_subject_name"`
	StudySessionSubjectPriority   int    `gorm:"not null;column:study_session_subject_priority" json:"study_session_subject_priority"`
	StudySessionSubjectDifficulty string `gorm:"type:varchar(10);not null;column:study_session_subject_difficulty" json:"study_session_subject_difficulty"`
	StudySessionSubjectColor      string `gorm:"type:varchar(20);not null;column:study_session_subject_color" json:"study_session_subject_color"`
	StudySessionSubjectEstimated  int    `gorm:"not null;default:90;column:study_session_subject_estimated" json:"study_session_subject_estimated"`

	// Waktu
	StudySessionStartTime time.Time `gorm:"type:timestamptz;not null;column:study_session_start_time;index" json:"study_session_start_time"`
	StudySessionEndTime   time.Time `gorm:"type:timestamptz;not null;column:study_session_end_time" json:"study_session_end_time"`
	StudySessionDuration  int       `gorm:"not null;column:study_session_duration" json:"study_session_duration"`

	// Status & hasil
	StudySessionPriority       int     `gorm:"not null;column:study_session_priority" json:"study_session_priority"`
	StudySessionStatus         string  `gorm:"type:varchar(15);not null;default:'pending';column:study_session_status" json:"study_session_status"`
	StudySessionActualDuration *int    `gorm:"column:study_session_actual_duration" json:"study_session_actual_duration,omitempty"`
	StudySessionNotes          *string `gorm:"type:text;column:study_session_notes" json:"study_session_notes,omitempty"`

	// Skor optimasi
	StudySessionScore     float64 `gorm:"not null;default:0;column:study_session_score" json:"study_session_score"`
	StudySessionOptimized bool    `gorm:"not null;default:false;column:study_session_optimized" json:"study_session_optimized"`

	// Audit
	StudySessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:study_session_created_at" json:"study_session_created_at"`
	StudySessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:study_session_updated_at" json:"study_session_updated_at"`
	StudySessionDeletedAt gorm.DeletedAt `gorm:"column:study_session_deleted_at;index" json:"study_session_deleted_at,omitempty"`
}

func (StudySessionModel) TableName() string { return "study_sessions" }

// EffectiveDuration: pakai durasi aktual kalau ada, kalau tidak durasi rencana.
func (m StudySessionModel) EffectiveDuration() int {
	if m.StudySessionActualDuration != nil {
		return *m.StudySessionActualDuration
	}
	return m.StudySessionDuration
}
