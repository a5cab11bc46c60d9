package route

import (
	controller "studyku_backend/internals/features/study/feedback/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FeedbackRoutes(api fiber.Router, db *gorm.DB) {
	feedbackController := controller.NewFeedbackController(db)

	feedback := api.Group("/feedback")
	feedback.Post("/", feedbackController.SubmitFeedback)
	feedback.Get("/user/:user_id", feedbackController.ListUserFeedback)
}
