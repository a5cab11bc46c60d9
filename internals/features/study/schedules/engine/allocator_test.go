package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	subjectModel "studyku_backend/internals/features/study/subjects/model"
)

func makeSlots(n int) []Slot {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	slots := make([]Slot, 0, n)
	for i := 0; i < n; i++ {
		start := base.Add(time.Duration(i) * 105 * time.Minute)
		slots = append(slots, Slot{
			StartTime: start,
			EndTime:   start.Add(90 * time.Minute),
			Duration:  90,
		})
	}
	return slots
}

func subject(name string, priority, estimated int) subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		SubjectID:                uuid.New(),
		SubjectName:              name,
		SubjectPriority:          priority,
		SubjectEstimatedDuration: estimated,
		SubjectDifficulty:        subjectModel.DifficultyMedium,
	}
}

func TestAllocateSubjects_PriorityOrder(t *testing.T) {
	userID := uuid.New()
	// Urutan input = urutan prioritas (caller yang sudah sort)
	subjects := []subjectModel.SubjectModel{
		subject("Matematika", 3, 180), // butuh 2 sesi
		subject("Sejarah", 1, 90),     // butuh 1 sesi
	}

	sessions, err := AllocateSubjects(userID, subjects, makeSlots(3))
	if err != nil {
		t.Fatalf("AllocateSubjects: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("len(sessions) = %d, want 3", len(sessions))
	}

	// Dua slot pertama untuk subject prioritas tinggi
	for i := 0; i < 2; i++ {
		if sessions[i].StudySessionSubjectName != "Matematika" {
			t.Errorf("sessions[%d] = %s, want Matematika", i, sessions[i].StudySessionSubjectName)
		}
	}
	if sessions[2].StudySessionSubjectName != "Sejarah" {
		t.Errorf("sessions[2] = %s, want Sejarah", sessions[2].StudySessionSubjectName)
	}

	for i, sess := range sessions {
		if sess.StudySessionUserID != userID {
			t.Errorf("sessions[%d].user = %s, want %s", i, sess.StudySessionUserID, userID)
		}
		if sess.StudySessionStatus != "pending" {
			t.Errorf("sessions[%d].status = %s, want pending", i, sess.StudySessionStatus)
		}
	}
}

func TestAllocateSubjects_CeilSessions(t *testing.T) {
	// 200 menit → ceil(200/90) = 3 sesi
	sessions, err := AllocateSubjects(uuid.New(),
		[]subjectModel.SubjectModel{subject("Fisika", 5, 200)},
		makeSlots(5))
	if err != nil {
		t.Fatalf("AllocateSubjects: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("len(sessions) = %d, want 3", len(sessions))
	}
}

func TestAllocateSubjects_ZeroEstimatedFallsBack(t *testing.T) {
	sessions, err := AllocateSubjects(uuid.New(),
		[]subjectModel.SubjectModel{subject("Kimia", 2, 0)},
		makeSlots(3))
	if err != nil {
		t.Fatalf("AllocateSubjects: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].StudySessionSubjectEstimated != subjectModel.DefaultEstimatedDuration {
		t.Errorf("estimated = %d, want %d",
			sessions[0].StudySessionSubjectEstimated, subjectModel.DefaultEstimatedDuration)
	}
}

func TestAllocateSubjects_SlotsExhausted(t *testing.T) {
	// Permintaan melebihi slot: sesi tidak pernah melebihi jumlah slot,
	// dan tiap slot dipakai maksimal sekali.
	subjects := []subjectModel.SubjectModel{
		subject("A", 5, 270), // 3 sesi
		subject("B", 4, 270), // 3 sesi
	}
	sessions, err := AllocateSubjects(uuid.New(), subjects, makeSlots(4))
	if err != nil {
		t.Fatalf("AllocateSubjects: %v", err)
	}
	if len(sessions) != 4 {
		t.Fatalf("len(sessions) = %d, want 4", len(sessions))
	}

	seen := map[time.Time]bool{}
	for _, sess := range sessions {
		if seen[sess.StudySessionStartTime] {
			t.Errorf("slot %v dipakai dua kali", sess.StudySessionStartTime)
		}
		seen[sess.StudySessionStartTime] = true
	}
}

func TestAllocateSubjects_Errors(t *testing.T) {
	if _, err := AllocateSubjects(uuid.New(), nil, makeSlots(2)); !errors.Is(err, ErrNoSubjects) {
		t.Errorf("err = %v, want ErrNoSubjects", err)
	}
	if _, err := AllocateSubjects(uuid.New(),
		[]subjectModel.SubjectModel{subject("A", 1, 90)}, nil); !errors.Is(err, ErrNoAvailableSlots) {
		t.Errorf("err = %v, want ErrNoAvailableSlots", err)
	}
}

func TestAllocateSubjects_SnapshotsSubject(t *testing.T) {
	sub := subject("Biologi", 4, 90)
	sub.SubjectColor = "#FF0000"
	sub.SubjectDifficulty = subjectModel.DifficultyHard

	sessions, err := AllocateSubjects(uuid.New(), []subjectModel.SubjectModel{sub}, makeSlots(1))
	if err != nil {
		t.Fatalf("AllocateSubjects: %v", err)
	}
	got := sessions[0]
	if got.StudySessionSubjectID != sub.SubjectID {
		t.Errorf("subject id tidak tersalin")
	}
	if got.StudySessionSubjectColor != "#FF0000" || got.StudySessionSubjectDifficulty != "hard" {
		t.Errorf("snapshot subject tidak lengkap: %+v", got)
	}
	if got.StudySessionPriority != 4 || got.StudySessionSubjectPriority != 4 {
		t.Errorf("priority tidak tersalin: %+v", got)
	}
}
