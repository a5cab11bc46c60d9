package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScheduleModel struct {
	// PK & owner
	ScheduleID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`
	ScheduleUserID uuid.UUID `gorm:"type:uuid;not null;column:schedule_user_id;index" json:"schedule_user_id"`

	// Hari jadwal ini dibuat untuk
	ScheduleDate time.Time `gorm:"type:timestamptz;not null;column:schedule_date;index" json:"schedule_date"`

	ScheduleIsGenerated bool `gorm:"not null;default:true;column:schedule_is_generated" json:"schedule_is_generated"`
	// true hanya kalau skor model benar-benar dipakai (bukan fallback acak)
	ScheduleAIOptimized bool `gorm:"not null;default:false;column:schedule_ai_optimized" json:"schedule_ai_optimized"`

	// Snapshot preferensi yang dipakai saat generate
	SchedulePreferences datatypes.JSON `gorm:"type:jsonb;column:schedule_preferences" json:"schedule_preferences,omitempty"`

	// Relasi
	ScheduleSessions []StudySessionModel `gorm:"foreignKey:StudySessionScheduleID;references:ScheduleID" json:"schedule_sessions,omitempty"`

	// Audit
	ScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:schedule_created_at" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:schedule_updated_at" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
