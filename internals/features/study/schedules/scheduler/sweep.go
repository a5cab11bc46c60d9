package scheduler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	analyticsService "studyku_backend/internals/features/analytics/analytics/service"
	scheduleService "studyku_backend/internals/features/study/schedules/service"
	prefModel "studyku_backend/internals/features/users/preferences/model"
	userModel "studyku_backend/internals/features/users/users/model"

	"studyku_backend/internals/configs"
)

const (
	defaultSweepConcurrency = 8
	perUserTimeout          = 30 * time.Second
)

// Satu entri fleet: user beserta preferensinya (user tanpa preferensi
// sudah tersaring sebelum pipeline jalan).
type fleetUser struct {
	User userModel.UserModel
	Pref prefModel.UserPreferenceModel
}

type userRunner func(ctx context.Context, fu fleetUser) error

// runSweep menjalankan runner per user dengan fan-out terbatas.
// Kegagalan satu user dicatat dan TIDAK menghentikan user lain;
// timeout per user hanya membatalkan run user itu.
func runSweep(ctx context.Context, name string, fleet []fleetUser, limit int, run userRunner) (succeeded, failed int64) {
	if limit <= 0 {
		limit = defaultSweepConcurrency
	}

	var okCount, failCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, fu := range fleet {
		fu := fu
		g.Go(func() error {
			userCtx, cancel := context.WithTimeout(gctx, perUserTimeout)
			defer cancel()

			if err := run(userCtx, fu); err != nil {
				atomic.AddInt64(&failCount, 1)
				log.Printf("[SWEEP:%s] user %s gagal: %v — lanjut ke user berikutnya", name, fu.User.UserID, err)
				return nil // jangan batalkan sibling
			}
			atomic.AddInt64(&okCount, 1)
			return nil
		})
	}
	_ = g.Wait()

	return atomic.LoadInt64(&okCount), atomic.LoadInt64(&failCount)
}

// loadFleet: semua user aktif yang punya preferensi. User tanpa preferensi
// dilewati di sini, sebelum pipeline dipanggil.
func loadFleet(ctx context.Context, db *gorm.DB) ([]fleetUser, error) {
	var prefs []prefModel.UserPreferenceModel
	if err := db.WithContext(ctx).Find(&prefs).Error; err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return nil, nil
	}

	userIDs := make([]interface{}, 0, len(prefs))
	for _, p := range prefs {
		userIDs = append(userIDs, p.UserPreferenceUserID)
	}

	var users []userModel.UserModel
	if err := db.WithContext(ctx).
		Where("user_id IN ? AND user_is_active = true", userIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]userModel.UserModel, len(users))
	for _, u := range users {
		byID[u.UserID.String()] = u
	}

	fleet := make([]fleetUser, 0, len(prefs))
	for _, p := range prefs {
		u, ok := byID[p.UserPreferenceUserID.String()]
		if !ok {
			continue
		}
		fleet = append(fleet, fleetUser{User: u, Pref: p})
	}
	return fleet, nil
}

// RunScheduleSweep: generate jadwal harian untuk seluruh fleet.
func RunScheduleSweep(ctx context.Context, db *gorm.DB) {
	fleet, err := loadFleet(ctx, db)
	if err != nil {
		log.Printf("[SWEEP:schedule] gagal ambil fleet: %v", err)
		return
	}
	if len(fleet) == 0 {
		log.Println("[SWEEP:schedule] tidak ada user dengan preferensi — skip")
		return
	}

	svc := scheduleService.NewScheduleService(db)
	ok, failed := runSweep(ctx, "schedule", fleet, defaultSweepConcurrency, func(userCtx context.Context, fu fleetUser) error {
		_, err := svc.GenerateSchedule(userCtx, fu.User.UserID, fu.Pref, fu.User)
		return err
	})
	log.Printf("[SWEEP:schedule] selesai: %d sukses, %d gagal dari %d user", ok, failed, len(fleet))
}

// RunAnalyticsSweep: laporan mingguan (minggu penuh sebelumnya) untuk seluruh fleet.
func RunAnalyticsSweep(ctx context.Context, db *gorm.DB) {
	fleet, err := loadFleet(ctx, db)
	if err != nil {
		log.Printf("[SWEEP:analytics] gagal ambil fleet: %v", err)
		return
	}
	if len(fleet) == 0 {
		log.Println("[SWEEP:analytics] tidak ada user dengan preferensi — skip")
		return
	}

	weekStart := previousWeekStart(time.Now())
	svc := analyticsService.NewAnalyticsService(db)
	ok, failed := runSweep(ctx, "analytics", fleet, defaultSweepConcurrency, func(userCtx context.Context, fu fleetUser) error {
		_, err := svc.GenerateWeeklyReport(userCtx, fu.User.UserID, weekStart)
		return err
	})
	log.Printf("[SWEEP:analytics] selesai: %d sukses, %d gagal dari %d user", ok, failed, len(fleet))
}

// previousWeekStart: awal minggu penuh sebelumnya (Minggu 00:00).
func previousWeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thisWeek := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	return thisWeek.AddDate(0, 0, -7)
}

// StartFleetCron memasang dua sweep terjadwal:
// - generate jadwal tiap pagi (default 06:00 UTC)
// - laporan mingguan tiap Minggu 00:00
// SkipIfStillRunning menjaga sweep lambat tidak numpuk.
func StartFleetCron(db *gorm.DB) {
	scheduleSpec := configs.GetEnv("SCHEDULE_SWEEP_CRON", "0 6 * * *")
	analyticsSpec := configs.GetEnv("ANALYTICS_SWEEP_CRON", "0 0 * * 0")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(scheduleSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		RunScheduleSweep(ctx, db)
	}); err != nil {
		log.Fatalf("[SWEEP] add cron schedule gagal: %v", err)
	}

	if _, err := c.AddFunc(analyticsSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		RunAnalyticsSweep(ctx, db)
	}); err != nil {
		log.Fatalf("[SWEEP] add cron analytics gagal: %v", err)
	}

	log.Printf("[SWEEP] started schedule=%q analytics=%q", scheduleSpec, analyticsSpec)
	c.Start()
}
