package details

import (
	feedbackRoute "studyku_backend/internals/features/study/feedback/route"
	scheduleRoute "studyku_backend/internals/features/study/schedules/route"
	subjectRoute "studyku_backend/internals/features/study/subjects/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudyRoutes(api fiber.Router, db *gorm.DB) {
	subjectRoute.SubjectRoutes(api, db)
	scheduleRoute.ScheduleRoutes(api, db)
	feedbackRoute.FeedbackRoutes(api, db)
}
