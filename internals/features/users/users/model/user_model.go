package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Identitas
	UserName     string  `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string  `gorm:"type:varchar(255);not null;unique;column:user_email" json:"user_email"`
	UserPassword *string `gorm:"type:text;column:user_password" json:"-"`
	UserGoogleID *string `gorm:"type:varchar(64);column:user_google_id" json:"-"`
	UserPhotoURL *string `gorm:"type:text;column:user_photo_url" json:"user_photo_url,omitempty"`

	// Statistik berjalan — dibaca oleh scorer saat optimasi jadwal
	UserAverageStressLevel  float64 `gorm:"not null;default:0.5;column:user_average_stress_level" json:"user_average_stress_level"`
	UserCompletionRate      float64 `gorm:"not null;default:0.5;column:user_completion_rate" json:"user_completion_rate"`
	UserPreferredStudyHours float64 `gorm:"not null;default:6;column:user_preferred_study_hours" json:"user_preferred_study_hours"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
