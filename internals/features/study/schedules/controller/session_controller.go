package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	schedDTO "studyku_backend/internals/features/study/schedules/dto"
	schedModel "studyku_backend/internals/features/study/schedules/model"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// PUT /api/schedule/session/:session_id
// Update status/hasil sesi. Hanya pemilik sesi yang boleh.
func (sec *SessionController) UpdateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Session ID tidak valid")
	}

	var req schedDTO.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := sec.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var session schedModel.StudySessionModel
	err = sec.DB.WithContext(c.Context()).
		Where("study_session_id = ? AND study_session_user_id = ?", sessionID, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	if req.Status != nil {
		session.StudySessionStatus = *req.Status
	}
	if req.ActualDuration != nil {
		session.StudySessionActualDuration = req.ActualDuration
	}
	if req.Notes != nil {
		session.StudySessionNotes = req.Notes
	}
	session.StudySessionUpdatedAt = time.Now()

	if err := sec.DB.WithContext(c.Context()).Save(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return helper.Success(c, "Sesi diperbarui", session)
}

// DELETE /api/schedule/session/:session_id — soft delete.
func (sec *SessionController) DeleteSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Session ID tidak valid")
	}

	res := sec.DB.WithContext(c.Context()).
		Where("study_session_id = ? AND study_session_user_id = ?", sessionID, userID).
		Delete(&schedModel.StudySessionModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	return helper.Success(c, "Sesi dihapus", nil)
}
