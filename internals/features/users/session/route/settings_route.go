package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/users/session/controller"
)

func SettingsRoutes(user fiber.Router, ctl *controller.SettingsController) {
	user.Get("/settings", ctl.Get)
	user.Put("/settings", ctl.Update)
}
