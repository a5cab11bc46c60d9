package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Satu jendela ketersediaan belajar (disimpan sebagai elemen JSONB).
type AvailabilityWindow struct {
	Day         string `json:"day"`
	StartTime   string `json:"start_time"` // format HH:MM
	EndTime     string `json:"end_time"`   // format HH:MM
	IsAvailable bool   `json:"is_available"`
}

type UserPreferenceModel struct {
	// PK & owner
	UserPreferenceID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_preference_id" json:"user_preference_id"`
	UserPreferenceUserID uuid.UUID `gorm:"type:uuid;not null;unique;column:user_preference_user_id" json:"user_preference_user_id"`

	// Jendela ketersediaan (array AvailabilityWindow dalam JSONB)
	UserPreferenceAvailableTimeSlots datatypes.JSON `gorm:"type:jsonb;column:user_preference_available_time_slots" json:"user_preference_available_time_slots"`

	UserPreferenceBreakDuration      int     `gorm:"not null;default:15;column:user_preference_break_duration" json:"user_preference_break_duration"`
	UserPreferencePreferredHours     float64 `gorm:"not null;default:6;column:user_preference_preferred_hours" json:"user_preference_preferred_hours"`
	UserPreferenceMaxSessionLength   int     `gorm:"not null;default:90;column:user_preference_max_session_length" json:"user_preference_max_session_length"`
	UserPreferenceStudyStyle         string  `gorm:"type:varchar(20);not null;default:'mixed';column:user_preference_study_style" json:"user_preference_study_style"`
	UserPreferenceNotificationsOn    bool    `gorm:"not null;default:true;column:user_preference_notifications_on" json:"user_preference_notifications_on"`
	UserPreferenceWeeklyGoal         float64 `gorm:"not null;default:0;column:user_preference_weekly_goal" json:"user_preference_weekly_goal"`

	// Audit
	UserPreferenceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_preference_created_at" json:"user_preference_created_at"`
	UserPreferenceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_preference_updated_at" json:"user_preference_updated_at"`
}

func (UserPreferenceModel) TableName() string { return "user_preferences" }

// Windows membongkar kolom JSONB jadi slice; JSONB korup dianggap kosong, bukan fatal.
func (m UserPreferenceModel) Windows() []AvailabilityWindow {
	if len(m.UserPreferenceAvailableTimeSlots) == 0 {
		return nil
	}
	var out []AvailabilityWindow
	if err := sonic.Unmarshal(m.UserPreferenceAvailableTimeSlots, &out); err != nil {
		return nil
	}
	return out
}
