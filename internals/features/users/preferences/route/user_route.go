package route

import (
	controller "studyku_backend/internals/features/users/preferences/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base group sudah dibungkus AuthJWT oleh pemanggil.
func PreferenceRoutes(api fiber.Router, db *gorm.DB) {
	prefController := controller.NewUserPreferenceController(db)

	pref := api.Group("/preferences")
	pref.Get("/", prefController.GetPreferences)
	pref.Put("/", prefController.UpdatePreferences)
}
