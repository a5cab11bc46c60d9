package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

// Jendela progress stats (hari)
const ProgressWindowDays = 30

// Statistik satu subject dalam laporan mingguan.
type SubjectStats struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	SubjectName        string    `json:"subject_name"`
	TotalTime          int       `json:"total_time"`
	CompletedSessions  int       `json:"completed_sessions"`
	AverageStressLevel float64   `json:"average_stress_level"`
	AverageDifficulty  float64   `json:"average_difficulty"`
}

type WeeklyReport struct {
	UserID             uuid.UUID      `json:"user_id"`
	WeekStart          time.Time      `json:"week_start"`
	TotalStudyTime     int            `json:"total_study_time"`
	CompletedSessions  int            `json:"completed_sessions"`
	MissedSessions     int            `json:"missed_sessions"`
	AverageStressLevel float64        `json:"average_stress_level"`
	SubjectBreakdown   []SubjectStats `json:"subject_breakdown"`
	Goals              []string       `json:"goals"`
}

type DailyProgress struct {
	Date              string `json:"date"` // YYYY-MM-DD
	TotalTime         int    `json:"total_time"`
	CompletedSessions int    `json:"completed_sessions"`
	TotalSessions     int    `json:"total_sessions"`
}

type ProgressStats struct {
	TotalSessions          int             `json:"total_sessions"`
	CompletedSessions      int             `json:"completed_sessions"`
	CompletionRate         float64         `json:"completion_rate"`
	TotalStudyTime         int             `json:"total_study_time"`
	AverageSessionDuration float64         `json:"average_session_duration"`
	DailyProgress          []DailyProgress `json:"daily_progress"`
	Period                 string          `json:"period"`
}

// BuildWeeklyReport mengagregasi sesi+feedback seminggu jadi satu laporan.
// Murni: tidak menyentuh record sumber. Sesi/feedback yang dipass diasumsikan
// sudah difilter ke rentang [weekStart, weekStart+7 hari).
func BuildWeeklyReport(userID uuid.UUID, weekStart time.Time, sessions []schedModel.StudySessionModel, feedback []fbModel.FeedbackModel) WeeklyReport {
	report := WeeklyReport{
		UserID:    userID,
		WeekStart: weekStart,
		Goals:     []string{},
	}

	for _, s := range sessions {
		report.TotalStudyTime += s.EffectiveDuration()
		switch s.StudySessionStatus {
		case schedModel.SessionStatusCompleted:
			report.CompletedSessions++
		case schedModel.SessionStatusMissed:
			report.MissedSessions++
		}
	}

	if len(feedback) > 0 {
		sum := 0
		for _, fb := range feedback {
			sum += fb.FeedbackStressLevel
		}
		report.AverageStressLevel = float64(sum) / float64(len(feedback))
	}

	report.SubjectBreakdown = buildSubjectBreakdown(sessions, feedback)
	return report
}

// buildSubjectBreakdown: total waktu & sesi selesai per subject dari sesi,
// rata-rata stress & difficulty dari feedback. Subject tanpa feedback dapat 0
// untuk kedua rata-rata. Urutan mengikuti kemunculan pertama di daftar sesi.
func buildSubjectBreakdown(sessions []schedModel.StudySessionModel, feedback []fbModel.FeedbackModel) []SubjectStats {
	type accum struct {
		stats        SubjectStats
		stressSum    int
		stressCount  int
		difficulty   int
		diffCount    int
	}

	order := make([]uuid.UUID, 0)
	bySubject := make(map[uuid.UUID]*accum)

	for _, s := range sessions {
		acc, ok := bySubject[s.StudySessionSubjectID]
		if !ok {
			acc = &accum{stats: SubjectStats{
				SubjectID:   s.StudySessionSubjectID,
				SubjectName: s.StudySessionSubjectName,
			}}
			bySubject[s.StudySessionSubjectID] = acc
			order = append(order, s.StudySessionSubjectID)
		}
		acc.stats.TotalTime += s.EffectiveDuration()
		if s.StudySessionStatus == schedModel.SessionStatusCompleted {
			acc.stats.CompletedSessions++
		}
	}

	for _, fb := range feedback {
		acc, ok := bySubject[fb.FeedbackSubjectID]
		if !ok {
			continue
		}
		acc.stressSum += fb.FeedbackStressLevel
		acc.stressCount++
		acc.difficulty += fb.FeedbackDifficultyRating
		acc.diffCount++
	}

	out := make([]SubjectStats, 0, len(order))
	for _, id := range order {
		acc := bySubject[id]
		if acc.stressCount > 0 {
			acc.stats.AverageStressLevel = float64(acc.stressSum) / float64(acc.stressCount)
		}
		if acc.diffCount > 0 {
			acc.stats.AverageDifficulty = float64(acc.difficulty) / float64(acc.diffCount)
		}
		out = append(out, acc.stats)
	}
	return out
}

// BuildProgressStats menghitung statistik 30 hari berjalan dari daftar sesi.
// Tanpa sesi: completion rate 0, tidak ada pembagian nol.
func BuildProgressStats(sessions []schedModel.StudySessionModel) ProgressStats {
	stats := ProgressStats{
		DailyProgress: []DailyProgress{},
		Period:        "30 days",
	}

	byDay := make(map[string]*DailyProgress)
	for _, s := range sessions {
		stats.TotalSessions++
		dur := s.EffectiveDuration()
		stats.TotalStudyTime += dur

		day := s.StudySessionStartTime.Format("2006-01-02")
		dp, ok := byDay[day]
		if !ok {
			dp = &DailyProgress{Date: day}
			byDay[day] = dp
		}
		dp.TotalSessions++
		dp.TotalTime += dur

		if s.StudySessionStatus == schedModel.SessionStatusCompleted {
			stats.CompletedSessions++
			dp.CompletedSessions++
		}
	}

	if stats.TotalSessions > 0 {
		stats.CompletionRate = float64(stats.CompletedSessions) / float64(stats.TotalSessions)
	}
	if stats.CompletedSessions > 0 {
		stats.AverageSessionDuration = float64(stats.TotalStudyTime) / float64(stats.CompletedSessions)
	}

	for _, dp := range byDay {
		stats.DailyProgress = append(stats.DailyProgress, *dp)
	}
	sort.Slice(stats.DailyProgress, func(i, j int) bool {
		return stats.DailyProgress[i].Date < stats.DailyProgress[j].Date
	})

	return stats
}
