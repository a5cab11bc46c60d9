package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

type fakeHistory struct {
	sessions []schedModel.StudySessionModel
	feedback []fbModel.FeedbackModel
	err      error
}

func (f *fakeHistory) SessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]schedModel.StudySessionModel, error) {
	return f.sessions, f.err
}

func (f *fakeHistory) FeedbackSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]fbModel.FeedbackModel, error) {
	return f.feedback, f.err
}

func pendingSessions(n int) []schedModel.StudySessionModel {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	out := make([]schedModel.StudySessionModel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, schedModel.StudySessionModel{
			StudySessionID:               uuid.New(),
			StudySessionSubjectName:      "Subject",
			StudySessionSubjectPriority:  i + 1,
			StudySessionPriority:         i + 1,
			StudySessionDuration:         90,
			StudySessionSubjectEstimated: 90,
			StudySessionStartTime:        base.Add(time.Duration(i) * 105 * time.Minute),
			StudySessionStatus:           schedModel.SessionStatusPending,
		})
	}
	return out
}

func historySessions(completed, missed int) []schedModel.StudySessionModel {
	var out []schedModel.StudySessionModel
	for i := 0; i < completed; i++ {
		s := pendingSessions(1)[0]
		s.StudySessionStatus = schedModel.SessionStatusCompleted
		out = append(out, s)
	}
	for i := 0; i < missed; i++ {
		s := pendingSessions(1)[0]
		s.StudySessionStatus = schedModel.SessionStatusMissed
		out = append(out, s)
	}
	return out
}

func TestOptimizeSchedule_NilHistoryFallsBack(t *testing.T) {
	scorer := NewScorer(nil, rand.NewSource(1))
	sessions := pendingSessions(4)

	out, aiOptimized := scorer.OptimizeSchedule(context.Background(), uuid.New(), sessions, UserSnapshot{})
	if aiOptimized {
		t.Fatal("aiOptimized = true, want false untuk fallback")
	}
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	for i, sess := range out {
		if sess.StudySessionScore < 0 || sess.StudySessionScore >= 1 {
			t.Errorf("score[%d] = %f, want [0,1)", i, sess.StudySessionScore)
		}
		if sess.StudySessionOptimized {
			t.Errorf("out[%d].Optimized = true, want false", i)
		}
		// fallback mempertahankan urutan alokasi
		if sess.StudySessionID != sessions[i].StudySessionID {
			t.Errorf("fallback mengubah urutan di index %d", i)
		}
	}
}

func TestOptimizeSchedule_HistoryErrorFallsBack(t *testing.T) {
	scorer := NewScorer(&fakeHistory{err: errors.New("db down")}, rand.NewSource(1))

	out, aiOptimized := scorer.OptimizeSchedule(context.Background(), uuid.New(), pendingSessions(3), UserSnapshot{})
	if aiOptimized {
		t.Fatal("aiOptimized = true, want false saat histori error")
	}
	for i, sess := range out {
		if sess.StudySessionOptimized {
			t.Errorf("out[%d].Optimized = true, want false", i)
		}
	}
}

func TestOptimizeSchedule_TrainedModel(t *testing.T) {
	hist := &fakeHistory{sessions: historySessions(6, 2)}
	scorer := NewScorer(hist, rand.NewSource(42))

	out, aiOptimized := scorer.OptimizeSchedule(context.Background(), uuid.New(), pendingSessions(5),
		UserSnapshot{AverageStressLevel: 2.5, CompletionRate: 0.7, PreferredStudyHours: 4})
	if !aiOptimized {
		t.Fatal("aiOptimized = false, want true untuk model terlatih")
	}
	for i, sess := range out {
		if sess.StudySessionScore <= 0 || sess.StudySessionScore >= 1 {
			t.Errorf("score[%d] = %f, want (0,1)", i, sess.StudySessionScore)
		}
		if !sess.StudySessionOptimized {
			t.Errorf("out[%d].Optimized = false, want true", i)
		}
	}

	// Terurut skor menurun
	for i := 1; i < len(out); i++ {
		if out[i].StudySessionScore > out[i-1].StudySessionScore {
			t.Errorf("out tidak terurut menurun di index %d: %f > %f",
				i, out[i].StudySessionScore, out[i-1].StudySessionScore)
		}
	}
}

func TestOptimizeSchedule_EmptyHistoryStillScores(t *testing.T) {
	// Histori kosong: training di-skip tapi model (bobot awal) tetap dipakai.
	scorer := NewScorer(&fakeHistory{}, rand.NewSource(7))

	out, aiOptimized := scorer.OptimizeSchedule(context.Background(), uuid.New(), pendingSessions(2), UserSnapshot{})
	if !aiOptimized {
		t.Fatal("aiOptimized = false, want true (histori kosong bukan kegagalan)")
	}
	for i, sess := range out {
		if !sess.StudySessionOptimized {
			t.Errorf("out[%d].Optimized = false, want true", i)
		}
	}
}

func TestOptimizeSchedule_DoesNotMutateInput(t *testing.T) {
	scorer := NewScorer(&fakeHistory{sessions: historySessions(3, 1)}, rand.NewSource(9))
	sessions := pendingSessions(3)

	_, _ = scorer.OptimizeSchedule(context.Background(), uuid.New(), sessions, UserSnapshot{})
	for i, sess := range sessions {
		if sess.StudySessionScore != 0 || sess.StudySessionOptimized {
			t.Errorf("input sessions[%d] ikut termutasi: %+v", i, sess)
		}
	}
}

func TestOptimizeSchedule_Deterministic(t *testing.T) {
	run := func() []float64 {
		scorer := NewScorer(&fakeHistory{sessions: historySessions(4, 2)}, rand.NewSource(123))
		out, _ := scorer.OptimizeSchedule(context.Background(), uuid.Nil, pendingSessions(3),
			UserSnapshot{AverageStressLevel: 3, CompletionRate: 0.5, PreferredStudyHours: 6})
		scores := make([]float64, len(out))
		for i, s := range out {
			scores[i] = s.StudySessionScore
		}
		return scores
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("skor tidak deterministik dengan seed sama: %v vs %v", a, b)
		}
	}
}

func TestUserSnapshot_Defaults(t *testing.T) {
	snap := UserSnapshot{}.withDefaults()
	if snap.AverageStressLevel != 0.5 || snap.CompletionRate != 0.5 || snap.PreferredStudyHours != 6 {
		t.Errorf("defaults salah: %+v", snap)
	}

	set := UserSnapshot{AverageStressLevel: 3, CompletionRate: 0.8, PreferredStudyHours: 2}.withDefaults()
	if set.AverageStressLevel != 3 || set.CompletionRate != 0.8 || set.PreferredStudyHours != 2 {
		t.Errorf("nilai terisi ikut tertimpa: %+v", set)
	}
}
