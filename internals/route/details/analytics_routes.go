package details

import (
	analyticsRoute "studyku_backend/internals/features/analytics/analytics/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	analyticsRoute.AnalyticsRoutes(api, db)
}
