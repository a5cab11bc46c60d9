package service

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyku_backend/internals/features/study/schedules/engine"
	schedModel "studyku_backend/internals/features/study/schedules/model"
	subjectModel "studyku_backend/internals/features/study/subjects/model"
	prefModel "studyku_backend/internals/features/users/preferences/model"
	userModel "studyku_backend/internals/features/users/users/model"
)

// ScheduleService menjalankan pipeline generate:
// preferensi → slot → alokasi → skor → persist.
// Dependensi dirakit eksplisit lewat konstruktor, bukan diambil dari global.
type ScheduleService struct {
	db      *gorm.DB
	history engine.HistoryReader
	randSrc func() rand.Source
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		db:      db,
		history: NewHistoryRepository(db),
		randSrc: func() rand.Source { return rand.NewSource(time.Now().UnixNano()) },
	}
}

// NewScheduleServiceWithDeps untuk test / wiring khusus (rand source terkunci).
func NewScheduleServiceWithDeps(db *gorm.DB, history engine.HistoryReader, randSrc func() rand.Source) *ScheduleService {
	return &ScheduleService{db: db, history: history, randSrc: randSrc}
}

// GenerateSchedule membuat jadwal harian untuk satu user dan menyimpannya.
// Error alokasi (engine.ErrNoSubjects / engine.ErrNoAvailableSlots) diteruskan
// ke pemanggil — fatal untuk user ini, recoverable di level fleet.
func (s *ScheduleService) GenerateSchedule(ctx context.Context, userID uuid.UUID, pref prefModel.UserPreferenceModel, user userModel.UserModel) (*schedModel.ScheduleModel, error) {
	// 1) Subjects urut prioritas desc; tie-break stabil by urutan dibuat
	var subjects []subjectModel.SubjectModel
	if err := s.db.WithContext(ctx).
		Where("subject_user_id = ?", userID).
		Order("subject_priority DESC").
		Order("subject_created_at ASC").
		Find(&subjects).Error; err != nil {
		return nil, err
	}

	// 2) Slot dari jendela ketersediaan
	date := time.Now()
	slots := engine.GenerateTimeSlots(date, pref.Windows(), pref.UserPreferenceBreakDuration)

	// 3) Alokasi prioritas
	sessions, err := engine.AllocateSubjects(userID, subjects, slots)
	if err != nil {
		return nil, err
	}

	// 4) Skor + re-rank (tidak pernah gagal; fallback acak kalau model bermasalah)
	optimized, aiOptimized := s.OptimizeSessions(ctx, userID, sessions, user)

	prefsJSON, err := sonic.Marshal(pref)
	if err != nil {
		log.Printf("[SCHEDULE] gagal snapshot preferensi user %s: %v", userID, err)
		prefsJSON = nil
	}

	schedule := &schedModel.ScheduleModel{
		ScheduleUserID:      userID,
		ScheduleDate:        date,
		ScheduleIsGenerated: true,
		ScheduleAIOptimized: aiOptimized,
		SchedulePreferences: prefsJSON,
		ScheduleSessions:    optimized,
	}

	// 5) Persist schedule + sesi dalam satu transaksi
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(schedule).Error
	}); err != nil {
		return nil, err
	}

	return schedule, nil
}

// OptimizeSessions memberi skor dan mengurutkan ulang sesi.
// Return kedua true hanya bila skor model (bukan fallback) dipakai.
func (s *ScheduleService) OptimizeSessions(ctx context.Context, userID uuid.UUID, sessions []schedModel.StudySessionModel, user userModel.UserModel) ([]schedModel.StudySessionModel, bool) {
	scorer := engine.NewScorer(s.history, s.randSrc())
	return scorer.OptimizeSchedule(ctx, userID, sessions, engine.UserSnapshot{
		AverageStressLevel:  user.UserAverageStressLevel,
		CompletionRate:      user.UserCompletionRate,
		PreferredStudyHours: user.UserPreferredStudyHours,
	})
}

// RescoreSchedule menjalankan ulang scorer untuk jadwal yang sudah ada dan
// menyimpan skor barunya.
func (s *ScheduleService) RescoreSchedule(ctx context.Context, schedule *schedModel.ScheduleModel, user userModel.UserModel) (*schedModel.ScheduleModel, error) {
	optimized, aiOptimized := s.OptimizeSessions(ctx, schedule.ScheduleUserID, schedule.ScheduleSessions, user)
	schedule.ScheduleSessions = optimized
	schedule.ScheduleAIOptimized = aiOptimized

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schedModel.ScheduleModel{}).
			Where("schedule_id = ?", schedule.ScheduleID).
			Updates(map[string]interface{}{
				"schedule_ai_optimized": aiOptimized,
				"schedule_updated_at":   time.Now(),
			}).Error; err != nil {
			return err
		}
		for _, sess := range optimized {
			if err := tx.Model(&schedModel.StudySessionModel{}).
				Where("study_session_id = ?", sess.StudySessionID).
				Updates(map[string]interface{}{
					"study_session_score":     sess.StudySessionScore,
					"study_session_optimized": sess.StudySessionOptimized,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetLatestSchedule mengambil jadwal terakhir user, opsional difilter per hari.
func (s *ScheduleService) GetLatestSchedule(ctx context.Context, userID uuid.UUID, day *time.Time) (*schedModel.ScheduleModel, error) {
	q := s.db.WithContext(ctx).
		Preload("ScheduleSessions").
		Where("schedule_user_id = ?", userID)

	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("schedule_date >= ? AND schedule_date < ?", start, start.AddDate(0, 0, 1))
	}

	var schedule schedModel.ScheduleModel
	if err := q.Order("schedule_date DESC").First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}
