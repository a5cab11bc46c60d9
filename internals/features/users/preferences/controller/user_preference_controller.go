package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	prefDTO "studyku_backend/internals/features/users/preferences/dto"
	prefModel "studyku_backend/internals/features/users/preferences/model"
)

type UserPreferenceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserPreferenceController(db *gorm.DB) *UserPreferenceController {
	return &UserPreferenceController{DB: db, Validate: validator.New()}
}

// GET /api/preferences
// Kalau belum pernah diset, balikin default (tanpa menulis ke DB).
func (pc *UserPreferenceController) GetPreferences(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	var pref prefModel.UserPreferenceModel
	err = pc.DB.WithContext(c.Context()).
		Where("user_preference_user_id = ?", userID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = defaultPreference(userID)
		return helper.Success(c, "Preferensi default (belum pernah disimpan)", pref)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil preferensi")
	}

	return helper.Success(c, "Preferensi ditemukan", pref)
}

// PUT /api/preferences — upsert, hanya field yang dikirim yang berubah.
func (pc *UserPreferenceController) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	var req prefDTO.UpdatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var pref prefModel.UserPreferenceModel
	err = pc.DB.WithContext(c.Context()).
		Where("user_preference_user_id = ?", userID).
		First(&pref).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil preferensi")
	}
	if isNew {
		pref = defaultPreference(userID)
	}

	if req.AvailableTimeSlots != nil {
		raw, err := sonic.Marshal(req.AvailableTimeSlots)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "available_time_slots tidak valid")
		}
		pref.UserPreferenceAvailableTimeSlots = raw
	}
	if req.BreakDuration != nil {
		pref.UserPreferenceBreakDuration = *req.BreakDuration
	}
	if req.PreferredHours != nil {
		pref.UserPreferencePreferredHours = *req.PreferredHours
	}
	if req.MaxSessionLength != nil {
		pref.UserPreferenceMaxSessionLength = *req.MaxSessionLength
	}
	if req.StudyStyle != nil {
		pref.UserPreferenceStudyStyle = *req.StudyStyle
	}
	if req.NotificationsOn != nil {
		pref.UserPreferenceNotificationsOn = *req.NotificationsOn
	}
	if req.WeeklyGoal != nil {
		pref.UserPreferenceWeeklyGoal = *req.WeeklyGoal
	}
	pref.UserPreferenceUpdatedAt = time.Now()

	if isNew {
		if err := pc.DB.WithContext(c.Context()).Create(&pref).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Preferensi dibuat", pref)
	}

	if err := pc.DB.WithContext(c.Context()).Save(&pref).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}
	return helper.Success(c, "Preferensi diperbarui", pref)
}

func defaultPreference(userID uuid.UUID) prefModel.UserPreferenceModel {
	return prefModel.UserPreferenceModel{
		UserPreferenceUserID:           userID,
		UserPreferenceBreakDuration:    15,
		UserPreferencePreferredHours:   6,
		UserPreferenceMaxSessionLength: 90,
		UserPreferenceStudyStyle:       "mixed",
		UserPreferenceNotificationsOn:  true,
	}
}

func mapErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
