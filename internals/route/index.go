package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyku_backend/internals/configs"
	authService "studyku_backend/internals/features/users/auth/service"
	authMiddleware "studyku_backend/internals/middlewares/auth"
	routeDetails "studyku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PROTECTED =====================
	// Semua endpoint data di bawah /api wajib login; token yang sudah
	// di-logout ditolak lewat BlacklistChecker.
	log.Println("[INFO] Setting up protected /api group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
			BlacklistChecker: func(tok string) (bool, error) {
				return authService.IsTokenBlacklisted(db, tok)
			},
		}),
	)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Mounting Study routes...")
	routeDetails.StudyRoutes(api, db)

	log.Println("[INFO] Mounting Analytics routes...")
	routeDetails.AnalyticsRoutes(api, db)
}
