package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Laporan mingguan hasil agregasi; digenerate ulang tiap run, bukan diupdate inkremental.
type WeeklyReportModel struct {
	WeeklyReportID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_report_id" json:"weekly_report_id"`
	WeeklyReportUserID uuid.UUID `gorm:"type:uuid;not null;column:weekly_report_user_id;index" json:"weekly_report_user_id"`

	WeeklyReportWeekStart time.Time `gorm:"type:timestamptz;not null;column:weekly_report_week_start" json:"weekly_report_week_start"`

	WeeklyReportTotalStudyTime    int     `gorm:"not null;default:0;column:weekly_report_total_study_time" json:"weekly_report_total_study_time"`
	WeeklyReportCompletedSessions int     `gorm:"not null;default:0;column:weekly_report_completed_sessions" json:"weekly_report_completed_sessions"`
	WeeklyReportMissedSessions    int     `gorm:"not null;default:0;column:weekly_report_missed_sessions" json:"weekly_report_missed_sessions"`
	WeeklyReportAverageStress     float64 `gorm:"not null;default:0;column:weekly_report_average_stress" json:"weekly_report_average_stress"`

	// Breakdown per subject (JSONB) + daftar goal bebas (text[])
	WeeklyReportSubjectBreakdown datatypes.JSON `gorm:"type:jsonb;column:weekly_report_subject_breakdown" json:"weekly_report_subject_breakdown,omitempty"`
	WeeklyReportGoals            pq.StringArray `gorm:"type:text[];column:weekly_report_goals" json:"weekly_report_goals,omitempty"`

	WeeklyReportCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:weekly_report_created_at" json:"weekly_report_created_at"`
}

func (WeeklyReportModel) TableName() string { return "weekly_reports" }
