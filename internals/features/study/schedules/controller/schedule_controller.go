package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	"studyku_backend/internals/features/study/schedules/engine"
	scheduleService "studyku_backend/internals/features/study/schedules/service"
	prefModel "studyku_backend/internals/features/users/preferences/model"
	userModel "studyku_backend/internals/features/users/users/model"
)

type ScheduleController struct {
	DB      *gorm.DB
	Service *scheduleService.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Service: scheduleService.NewScheduleService(db)}
}

// POST /api/schedule/generate
// Generate jadwal hari ini dari preferensi + subjects milik user token.
func (scc *ScheduleController) GenerateSchedule(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	var user userModel.UserModel
	if err := scc.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var pref prefModel.UserPreferenceModel
	err = scc.DB.WithContext(c.Context()).
		Where("user_preference_user_id = ?", userID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Set preferensi dulu sebelum generate jadwal")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil preferensi")
	}

	schedule, err := scc.Service.GenerateSchedule(c.Context(), userID, pref, user)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNoSubjects):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Belum ada subject untuk dijadwalkan")
		case errors.Is(err, engine.ErrNoAvailableSlots):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Tidak ada slot waktu tersedia di preferensi")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal generate jadwal")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal berhasil dibuat", schedule)
}

// GET /api/schedule/user/:user_id?date=YYYY-MM-DD
func (scc *ScheduleController) GetUserSchedule(c *fiber.Ctx) error {
	userID, err := helper.EnsureOwner(c, "user_id")
	if err != nil {
		return mapErr(c, err)
	}

	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format date harus YYYY-MM-DD")
		}
		day = &parsed
	}

	schedule, err := scc.Service.GetLatestSchedule(c.Context(), userID, day)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	return helper.Success(c, "Jadwal ditemukan", schedule)
}

func mapErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
