package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	subjectDTO "studyku_backend/internals/features/study/subjects/dto"
	subjectModel "studyku_backend/internals/features/study/subjects/model"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// POST /api/subjects
func (sc *SubjectController) CreateSubject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.Slugify(req.Name, 160)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), sc.DB, "subjects", "subject_slug", base,
		func(q *gorm.DB) *gorm.DB {
			return q.Where("subject_user_id = ? AND subject_deleted_at IS NULL", userID)
		}, 160)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	subject := subjectModel.SubjectModel{
		SubjectUserID:            userID,
		SubjectName:              req.Name,
		SubjectSlug:              &slug,
		SubjectPriority:          req.Priority,
		SubjectEstimatedDuration: req.EstimatedDuration,
		SubjectDifficulty:        req.Difficulty,
		SubjectColor:             req.Color,
	}
	if subject.SubjectEstimatedDuration <= 0 {
		subject.SubjectEstimatedDuration = subjectModel.DefaultEstimatedDuration
	}
	if subject.SubjectDifficulty == "" {
		subject.SubjectDifficulty = subjectModel.DifficultyMedium
	}
	if subject.SubjectColor == "" {
		subject.SubjectColor = "#4F46E5"
	}

	if err := sc.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.Error(c, fiber.StatusConflict, "Subject dengan nama serupa sudah ada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject dibuat", subject)
}

// GET /api/subjects/user/:user_id — urut prioritas turun, lalu terlama dulu.
func (sc *SubjectController) ListSubjects(c *fiber.Ctx) error {
	userID, err := helper.EnsureOwner(c, "user_id")
	if err != nil {
		return mapErr(c, err)
	}

	var subjects []subjectModel.SubjectModel
	if err := sc.DB.WithContext(c.Context()).
		Where("subject_user_id = ?", userID).
		Order("subject_priority DESC, subject_created_at ASC").
		Find(&subjects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subjects")
	}

	return helper.Success(c, "Daftar subject", subjects)
}

// PUT /api/subjects/:subject_id
func (sc *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Subject ID tidak valid")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var subject subjectModel.SubjectModel
	err = sc.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_user_id = ?", subjectID, userID).
		First(&subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	if req.Name != nil && *req.Name != subject.SubjectName {
		subject.SubjectName = *req.Name
		base := helper.Slugify(*req.Name, 160)
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), sc.DB, "subjects", "subject_slug", base,
			func(q *gorm.DB) *gorm.DB {
				return q.Where("subject_user_id = ? AND subject_id <> ? AND subject_deleted_at IS NULL", userID, subjectID)
			}, 160)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		subject.SubjectSlug = &slug
	}
	if req.Priority != nil {
		subject.SubjectPriority = *req.Priority
	}
	if req.EstimatedDuration != nil {
		subject.SubjectEstimatedDuration = *req.EstimatedDuration
	}
	if req.Difficulty != nil {
		subject.SubjectDifficulty = *req.Difficulty
	}
	if req.Color != nil {
		subject.SubjectColor = *req.Color
	}
	subject.SubjectUpdatedAt = time.Now()

	if err := sc.DB.WithContext(c.Context()).Save(&subject).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}

	return helper.Success(c, "Subject diperbarui", subject)
}

// DELETE /api/subjects/:subject_id — soft delete.
func (sc *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return mapErr(c, err)
	}

	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Subject ID tidak valid")
	}

	res := sc.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_user_id = ?", subjectID, userID).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	return helper.Success(c, "Subject dihapus", nil)
}

func mapErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
