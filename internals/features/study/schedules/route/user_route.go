package route

import (
	controller "studyku_backend/internals/features/study/schedules/controller"
	rateLimiter "studyku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	scheduleController := controller.NewScheduleController(db)
	sessionController := controller.NewSessionController(db)

	schedule := api.Group("/schedule")

	// Generate mahal (training model) — dibatasi rate limiter khusus.
	schedule.Post("/generate", rateLimiter.GenerateScheduleRateLimiter(), scheduleController.GenerateSchedule)
	schedule.Get("/user/:user_id", scheduleController.GetUserSchedule)

	schedule.Put("/session/:session_id", sessionController.UpdateSession)
	schedule.Delete("/session/:session_id", sessionController.DeleteSession)
}
