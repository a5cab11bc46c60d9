package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	analyticsService "studyku_backend/internals/features/analytics/analytics/service"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Service *analyticsService.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, Service: analyticsService.NewAnalyticsService(db)}
}

// GET /api/analytics/weekly/:user_id?week_start=YYYY-MM-DD
// Default: awal minggu berjalan (Minggu 00:00).
func (ac *AnalyticsController) GetWeeklyReport(c *fiber.Ctx) error {
	userID, err := helper.EnsureOwner(c, "user_id")
	if err != nil {
		return mapErr(c, err)
	}

	weekStart := currentWeekStart(time.Now())
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format week_start harus YYYY-MM-DD")
		}
		weekStart = parsed
	}

	report, err := ac.Service.GenerateWeeklyReport(c.Context(), userID, weekStart)
	if err != nil {
		if errors.Is(err, analyticsService.ErrDataRetrieval) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data historis")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat laporan mingguan")
	}

	return helper.Success(c, "Laporan mingguan", report)
}

// GET /api/analytics/progress/:user_id — statistik 30 hari, dihitung on-demand.
func (ac *AnalyticsController) GetProgressStats(c *fiber.Ctx) error {
	userID, err := helper.EnsureOwner(c, "user_id")
	if err != nil {
		return mapErr(c, err)
	}

	stats, err := ac.Service.GetProgressStats(c.Context(), userID)
	if err != nil {
		if errors.Is(err, analyticsService.ErrDataRetrieval) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data historis")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung progress")
	}

	return helper.Success(c, "Progress 30 hari", stats)
}

func currentWeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

func mapErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
