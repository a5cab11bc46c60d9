package route

import (
	controller "studyku_backend/internals/features/users/auth/controller"
	rateLimiter "studyku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.Refresh)

	// Logout cukup bawa token yang mau dicabut
	baseAuth.Post("/logout", authController.Logout)
}
