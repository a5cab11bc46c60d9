package route

import (
	controller "studyku_backend/internals/features/study/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	subjectController := controller.NewSubjectController(db)

	subjects := api.Group("/subjects")
	subjects.Post("/", subjectController.CreateSubject)
	subjects.Get("/user/:user_id", subjectController.ListSubjects)
	subjects.Put("/:subject_id", subjectController.UpdateSubject)
	subjects.Delete("/:subject_id", subjectController.DeleteSubject)
}
