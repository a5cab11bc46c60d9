package engine

import (
	"context"
	"log"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	fbModel "studyku_backend/internals/features/study/feedback/model"
	schedModel "studyku_backend/internals/features/study/schedules/model"
	subjectModel "studyku_backend/internals/features/study/subjects/model"
)

const (
	featureCount = 10
	trainEpochs  = 50
	learningRate = 0.001

	// jendela data historis untuk training
	historyWindowDays = 30
)

// Snapshot user yang dibaca scorer (statistik berjalan di tabel users).
type UserSnapshot struct {
	AverageStressLevel  float64
	CompletionRate      float64
	PreferredStudyHours float64
}

// HistoryReader: akses read-only ke sesi & feedback historis.
// Engine tidak pernah pegang koneksi DB langsung; implementasinya di service.
type HistoryReader interface {
	SessionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]schedModel.StudySessionModel, error)
	FeedbackSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]fbModel.FeedbackModel, error)
}

// Scorer: model logistik sederhana yang memberi tiap sesi skor [0,1]
// (perkiraan peluang selesai), lalu mengurutkan sesi dari skor tertinggi.
// Kalau model gagal total, tiap sesi tetap dapat skor acak [0,1) — jadwal
// tidak pernah batal cuma karena model.
type Scorer struct {
	history HistoryReader
	rnd     *rand.Rand

	weights [featureCount]float64
	bias    float64
}

// NewScorer membuat scorer dengan bobot awal kecil dari sumber acak yang
// diinjeksi — test bisa mengunci source-nya biar deterministik.
func NewScorer(history HistoryReader, src rand.Source) *Scorer {
	rnd := rand.New(src)
	s := &Scorer{history: history, rnd: rnd}
	for i := range s.weights {
		s.weights[i] = (rnd.Float64() - 0.5) * 0.1
	}
	return s
}

// OptimizeSchedule melatih model dari histori 30 hari (best-effort), memberi
// skor tiap sesi, lalu stable-sort descending. Return kedua: true hanya kalau
// skor model benar-benar dipakai (bukan fallback acak).
func (s *Scorer) OptimizeSchedule(ctx context.Context, userID uuid.UUID, sessions []schedModel.StudySessionModel, snap UserSnapshot) ([]schedModel.StudySessionModel, bool) {
	out := make([]schedModel.StudySessionModel, len(sessions))
	copy(out, sessions)

	snap = snap.withDefaults()

	if s == nil || s.history == nil {
		return s.fallback(out), false
	}

	if err := s.train(ctx, userID, snap); err != nil {
		log.Printf("[SCORER] training gagal untuk user %s: %v — pakai skor fallback", userID, err)
		return s.fallback(out), false
	}

	for i := range out {
		score := s.predict(extractFeatures(out[i], snap))
		if math.IsNaN(score) || math.IsInf(score, 0) {
			log.Printf("[SCORER] prediksi tidak valid untuk user %s — pakai skor fallback", userID)
			return s.fallback(out), false
		}
		out[i].StudySessionScore = score
		out[i].StudySessionOptimized = true
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StudySessionScore > out[j].StudySessionScore
	})
	return out, true
}

// train: ambil sesi+feedback 30 hari terakhir, join per session id,
// label sukses = status completed, lalu fit logistic regression pakai
// gradient descent. Histori kosong = skip, bukan error.
func (s *Scorer) train(ctx context.Context, userID uuid.UUID, snap UserSnapshot) error {
	since := time.Now().AddDate(0, 0, -historyWindowDays)

	histSessions, err := s.history.SessionsSince(ctx, userID, since)
	if err != nil {
		return err
	}
	if len(histSessions) == 0 {
		return nil
	}
	histFeedback, err := s.history.FeedbackSince(ctx, userID, since)
	if err != nil {
		return err
	}

	bySession := make(map[uuid.UUID]fbModel.FeedbackModel, len(histFeedback))
	for _, fb := range histFeedback {
		bySession[fb.FeedbackSessionID] = fb
	}

	features := make([][featureCount]float64, 0, len(histSessions))
	labels := make([]float64, 0, len(histSessions))
	for _, sess := range histSessions {
		// join-nya by session id; field feedback tidak masuk vektor fitur,
		// tapi record tanpa feedback tetap ikut dilatih
		_ = bySession[sess.StudySessionID]

		features = append(features, extractFeatures(sess, snap))
		label := 0.0
		if sess.StudySessionStatus == schedModel.SessionStatusCompleted {
			label = 1.0
		}
		labels = append(labels, label)
	}

	for epoch := 0; epoch < trainEpochs; epoch++ {
		for i, x := range features {
			p := s.predict(x)
			grad := p - labels[i]
			for j := 0; j < featureCount; j++ {
				s.weights[j] -= learningRate * grad * x[j]
			}
			s.bias -= learningRate * grad
		}
	}
	return nil
}

func (s *Scorer) predict(x [featureCount]float64) float64 {
	z := s.bias
	for i := 0; i < featureCount; i++ {
		z += s.weights[i] * x[i]
	}
	return sigmoid(z)
}

// fallback: skor acak seragam [0,1) per sesi, urutan alokasi dipertahankan.
func (s *Scorer) fallback(sessions []schedModel.StudySessionModel) []schedModel.StudySessionModel {
	rnd := s.randSource()
	for i := range sessions {
		sessions[i].StudySessionScore = rnd.Float64()
		sessions[i].StudySessionOptimized = false
	}
	return sessions
}

func (s *Scorer) randSource() *rand.Rand {
	if s != nil && s.rnd != nil {
		return s.rnd
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// extractFeatures: vektor fitur tetap 10 elemen, urutannya kontrak —
// jangan diubah tanpa melatih ulang semua bobot tersimpan.
func extractFeatures(sess schedModel.StudySessionModel, snap UserSnapshot) [featureCount]float64 {
	hard := 0.0
	if sess.StudySessionSubjectDifficulty == subjectModel.DifficultyHard {
		hard = 1.0
	}
	medium := 0.0
	if sess.StudySessionSubjectDifficulty == subjectModel.DifficultyMedium {
		medium = 1.0
	}

	estimated := float64(sess.StudySessionSubjectEstimated)
	if estimated <= 0 {
		estimated = subjectModel.DefaultEstimatedDuration
	}

	return [featureCount]float64{
		float64(sess.StudySessionPriority),
		float64(sess.StudySessionDuration),
		hard,
		medium,
		float64(sess.StudySessionStartTime.Hour()) / 24,
		float64(sess.StudySessionStartTime.Weekday()) / 7,
		snap.AverageStressLevel,
		snap.CompletionRate,
		snap.PreferredStudyHours,
		estimated,
	}
}

func (snap UserSnapshot) withDefaults() UserSnapshot {
	if snap.AverageStressLevel == 0 {
		snap.AverageStressLevel = 0.5
	}
	if snap.CompletionRate == 0 {
		snap.CompletionRate = 0.5
	}
	if snap.PreferredStudyHours == 0 {
		snap.PreferredStudyHours = 6
	}
	return snap
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
