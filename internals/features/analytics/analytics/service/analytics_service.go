package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyku_backend/internals/features/analytics/analytics/engine"
	reportModel "studyku_backend/internals/features/analytics/analytics/model"
	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

// ErrDataRetrieval: query historis gagal. Diteruskan ke pemanggil;
// orchestrator yang log-and-skip per user.
var ErrDataRetrieval = errors.New("gagal mengambil data historis")

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// GenerateWeeklyReport mengagregasi 7 hari dari weekStart dan menyimpan
// hasilnya (laporan lama minggu yang sama diganti, bukan di-update).
func (s *AnalyticsService) GenerateWeeklyReport(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*engine.WeeklyReport, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	var sessions []schedModel.StudySessionModel
	if err := s.db.WithContext(ctx).
		Where("study_session_user_id = ? AND study_session_start_time >= ? AND study_session_start_time < ?",
			userID, weekStart, weekEnd).
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("%w: sesi mingguan: %v", ErrDataRetrieval, err)
	}

	var feedback []fbModel.FeedbackModel
	if err := s.db.WithContext(ctx).
		Where("feedback_user_id = ? AND feedback_created_at >= ? AND feedback_created_at < ?",
			userID, weekStart, weekEnd).
		Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("%w: feedback mingguan: %v", ErrDataRetrieval, err)
	}

	report := engine.BuildWeeklyReport(userID, weekStart, sessions, feedback)

	breakdownJSON, err := sonic.Marshal(report.SubjectBreakdown)
	if err != nil {
		breakdownJSON = nil
	}

	row := reportModel.WeeklyReportModel{
		WeeklyReportUserID:            userID,
		WeeklyReportWeekStart:         weekStart,
		WeeklyReportTotalStudyTime:    report.TotalStudyTime,
		WeeklyReportCompletedSessions: report.CompletedSessions,
		WeeklyReportMissedSessions:    report.MissedSessions,
		WeeklyReportAverageStress:     report.AverageStressLevel,
		WeeklyReportSubjectBreakdown:  breakdownJSON,
		WeeklyReportGoals:             report.Goals,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("weekly_report_user_id = ? AND weekly_report_week_start = ?", userID, weekStart).
			Delete(&reportModel.WeeklyReportModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	}); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetProgressStats menghitung statistik 30 hari berjalan (tidak dipersist).
func (s *AnalyticsService) GetProgressStats(ctx context.Context, userID uuid.UUID) (*engine.ProgressStats, error) {
	since := time.Now().AddDate(0, 0, -engine.ProgressWindowDays)

	var sessions []schedModel.StudySessionModel
	if err := s.db.WithContext(ctx).
		Where("study_session_user_id = ? AND study_session_start_time >= ?", userID, since).
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("%w: sesi 30 hari: %v", ErrDataRetrieval, err)
	}

	stats := engine.BuildProgressStats(sessions)
	return &stats, nil
}
