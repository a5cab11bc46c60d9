package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

var weekStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) // Minggu

func session(subjectID uuid.UUID, name, status string, day, duration int, actual *int) schedModel.StudySessionModel {
	return schedModel.StudySessionModel{
		StudySessionID:          uuid.New(),
		StudySessionSubjectID:   subjectID,
		StudySessionSubjectName: name,
		StudySessionStatus:      status,
		StudySessionStartTime:   weekStart.AddDate(0, 0, day).Add(9 * time.Hour),
		StudySessionDuration:    duration,
		StudySessionActualDuration: actual,
	}
}

func intPtr(v int) *int { return &v }

func TestBuildWeeklyReport(t *testing.T) {
	userID := uuid.New()
	math := uuid.New()
	history := uuid.New()

	sessions := []schedModel.StudySessionModel{
		session(math, "Matematika", schedModel.SessionStatusCompleted, 0, 90, nil),
		session(math, "Matematika", schedModel.SessionStatusCompleted, 1, 90, intPtr(60)), // aktual menimpa rencana
		session(math, "Matematika", schedModel.SessionStatusMissed, 2, 90, nil),
		session(history, "Sejarah", schedModel.SessionStatusCompleted, 3, 90, nil),
		session(history, "Sejarah", schedModel.SessionStatusPending, 4, 90, nil),
	}
	feedback := []fbModel.FeedbackModel{
		{FeedbackSubjectID: math, FeedbackSessionID: sessions[0].StudySessionID, FeedbackStressLevel: 4, FeedbackDifficultyRating: 5},
		{FeedbackSubjectID: math, FeedbackSessionID: sessions[1].StudySessionID, FeedbackStressLevel: 2, FeedbackDifficultyRating: 3},
		{FeedbackSubjectID: history, FeedbackSessionID: sessions[3].StudySessionID, FeedbackStressLevel: 3, FeedbackDifficultyRating: 2},
	}

	report := BuildWeeklyReport(userID, weekStart, sessions, feedback)

	if report.UserID != userID || !report.WeekStart.Equal(weekStart) {
		t.Errorf("identitas laporan salah: %+v", report)
	}
	// 90 + 60(aktual) + 90 + 90 + 90
	if report.TotalStudyTime != 420 {
		t.Errorf("TotalStudyTime = %d, want 420", report.TotalStudyTime)
	}
	if report.CompletedSessions != 3 {
		t.Errorf("CompletedSessions = %d, want 3", report.CompletedSessions)
	}
	if report.MissedSessions != 1 {
		t.Errorf("MissedSessions = %d, want 1", report.MissedSessions)
	}
	if report.AverageStressLevel != 3 { // (4+2+3)/3
		t.Errorf("AverageStressLevel = %f, want 3", report.AverageStressLevel)
	}
	if report.Goals == nil || len(report.Goals) != 0 {
		t.Errorf("Goals harus slice kosong, bukan nil: %+v", report.Goals)
	}

	if len(report.SubjectBreakdown) != 2 {
		t.Fatalf("len(SubjectBreakdown) = %d, want 2", len(report.SubjectBreakdown))
	}
	// Urutan: kemunculan pertama di daftar sesi
	m := report.SubjectBreakdown[0]
	if m.SubjectID != math || m.SubjectName != "Matematika" {
		t.Fatalf("breakdown[0] = %+v, want Matematika", m)
	}
	if m.TotalTime != 240 { // 90+60+90
		t.Errorf("math.TotalTime = %d, want 240", m.TotalTime)
	}
	if m.CompletedSessions != 2 {
		t.Errorf("math.CompletedSessions = %d, want 2", m.CompletedSessions)
	}
	if m.AverageStressLevel != 3 { // (4+2)/2
		t.Errorf("math.AverageStressLevel = %f, want 3", m.AverageStressLevel)
	}
	if m.AverageDifficulty != 4 { // (5+3)/2
		t.Errorf("math.AverageDifficulty = %f, want 4", m.AverageDifficulty)
	}

	h := report.SubjectBreakdown[1]
	if h.TotalTime != 180 || h.CompletedSessions != 1 {
		t.Errorf("history stats salah: %+v", h)
	}
}

func TestBuildWeeklyReport_NoFeedback(t *testing.T) {
	subjectID := uuid.New()
	report := BuildWeeklyReport(uuid.New(), weekStart,
		[]schedModel.StudySessionModel{
			session(subjectID, "Kimia", schedModel.SessionStatusCompleted, 0, 90, nil),
		}, nil)

	if report.AverageStressLevel != 0 {
		t.Errorf("AverageStressLevel = %f, want 0 tanpa feedback", report.AverageStressLevel)
	}
	if report.SubjectBreakdown[0].AverageStressLevel != 0 || report.SubjectBreakdown[0].AverageDifficulty != 0 {
		t.Errorf("breakdown tanpa feedback harus 0: %+v", report.SubjectBreakdown[0])
	}
}

func TestBuildWeeklyReport_Empty(t *testing.T) {
	report := BuildWeeklyReport(uuid.New(), weekStart, nil, nil)
	if report.TotalStudyTime != 0 || report.CompletedSessions != 0 || report.MissedSessions != 0 {
		t.Errorf("laporan kosong salah: %+v", report)
	}
	if len(report.SubjectBreakdown) != 0 {
		t.Errorf("SubjectBreakdown = %+v, want kosong", report.SubjectBreakdown)
	}
}

func TestBuildProgressStats(t *testing.T) {
	subjectID := uuid.New()
	sessions := []schedModel.StudySessionModel{
		session(subjectID, "A", schedModel.SessionStatusCompleted, 0, 90, nil),
		session(subjectID, "A", schedModel.SessionStatusCompleted, 0, 90, intPtr(45)),
		session(subjectID, "A", schedModel.SessionStatusMissed, 1, 90, nil),
		session(subjectID, "A", schedModel.SessionStatusPending, 2, 90, nil),
	}

	stats := BuildProgressStats(sessions)

	if stats.TotalSessions != 4 || stats.CompletedSessions != 2 {
		t.Errorf("hitungan sesi salah: %+v", stats)
	}
	if stats.CompletionRate != 0.5 {
		t.Errorf("CompletionRate = %f, want 0.5", stats.CompletionRate)
	}
	if stats.TotalStudyTime != 315 { // 90+45+90+90
		t.Errorf("TotalStudyTime = %d, want 315", stats.TotalStudyTime)
	}
	if stats.Period != "30 days" {
		t.Errorf("Period = %q, want \"30 days\"", stats.Period)
	}

	if len(stats.DailyProgress) != 3 {
		t.Fatalf("len(DailyProgress) = %d, want 3", len(stats.DailyProgress))
	}
	// Terurut tanggal naik
	for i := 1; i < len(stats.DailyProgress); i++ {
		if stats.DailyProgress[i].Date <= stats.DailyProgress[i-1].Date {
			t.Errorf("DailyProgress tidak terurut: %+v", stats.DailyProgress)
		}
	}
	day0 := stats.DailyProgress[0]
	if day0.TotalSessions != 2 || day0.CompletedSessions != 2 || day0.TotalTime != 135 {
		t.Errorf("day0 = %+v", day0)
	}
}

func TestBuildProgressStats_Empty(t *testing.T) {
	stats := BuildProgressStats(nil)
	if stats.CompletionRate != 0 || stats.AverageSessionDuration != 0 {
		t.Errorf("stats kosong harus 0 semua: %+v", stats)
	}
	if stats.DailyProgress == nil || len(stats.DailyProgress) != 0 {
		t.Errorf("DailyProgress harus slice kosong: %+v", stats.DailyProgress)
	}
}
