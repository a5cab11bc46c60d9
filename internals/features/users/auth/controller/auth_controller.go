package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "studyku_backend/internals/helpers"

	authDTO "studyku_backend/internals/features/users/auth/dto"
	authService "studyku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := authService.Register(ac.DB, req)
	if err != nil {
		return mapAuthErr(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", resp)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := authService.Login(ac.DB, req)
	if err != nil {
		return mapAuthErr(c, err)
	}
	return helper.Success(c, "Login berhasil", resp)
}

// POST /api/auth/login/google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := authService.LoginGoogle(ac.DB, req)
	if err != nil {
		return mapAuthErr(c, err)
	}
	return helper.Success(c, "Login Google berhasil", resp)
}

// POST /api/auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return helper.Error(c, fiber.StatusBadRequest, "refresh_token wajib diisi")
	}

	resp, err := authService.RefreshToken(ac.DB, req.RefreshToken)
	if err != nil {
		return mapAuthErr(c, err)
	}
	return helper.Success(c, "Token diperbarui", resp)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := bearerToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	if err := authService.Logout(ac.DB, raw); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.Success(c, "Logout berhasil", nil)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies("access_token")
}

func mapAuthErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
}
