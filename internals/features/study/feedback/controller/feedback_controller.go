package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	fbDTO "studyku_backend/internals/features/study/feedback/dto"
	fbModel "studyku_backend/internals/features/study/feedback/model"
	fbService "studyku_backend/internals/features/study/feedback/service"
)

const feedbackListLimit = 50

type FeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db, Validate: validator.New()}
}

// POST /api/feedback
func (fc *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	var req fbDTO.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := fc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Subject ID tidak valid")
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Session ID tidak valid")
	}

	fb := fbModel.FeedbackModel{
		FeedbackUserID:           userID,
		FeedbackSubjectID:        subjectID,
		FeedbackSessionID:        sessionID,
		FeedbackStressLevel:      req.StressLevel,
		FeedbackCompletionStatus: req.CompletionStatus,
		FeedbackDifficultyRating: req.DifficultyRating,
		FeedbackComments:         req.Comments,
		FeedbackSuggestions:      req.Suggestions,
	}

	if err := fbService.SubmitFeedback(c.Context(), fc.DB, &fb); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feedback tersimpan", fb)
}

// GET /api/feedback/user/:user_id — 50 terbaru.
func (fc *FeedbackController) ListUserFeedback(c *fiber.Ctx) error {
	userID, err := helper.EnsureOwner(c, "user_id")
	if err != nil {
		return mapErr(c, err)
	}

	var items []fbModel.FeedbackModel
	if err := fc.DB.WithContext(c.Context()).
		Where("feedback_user_id = ?", userID).
		Order("feedback_created_at DESC").
		Limit(feedbackListLimit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	return helper.Success(c, "Daftar feedback", items)
}

func mapErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
