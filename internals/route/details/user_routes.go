package details

import (
	prefRoute "studyku_backend/internals/features/users/preferences/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	prefRoute.PreferenceRoutes(api, db)
}
