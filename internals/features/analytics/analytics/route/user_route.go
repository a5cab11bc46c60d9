package route

import (
	controller "studyku_backend/internals/features/analytics/analytics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	analyticsController := controller.NewAnalyticsController(db)

	analytics := api.Group("/analytics")
	analytics.Get("/weekly/:user_id", analyticsController.GetWeeklyReport)
	analytics.Get("/progress/:user_id", analyticsController.GetProgressStats)
}
