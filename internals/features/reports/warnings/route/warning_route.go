package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/reports/warnings/controller"
)

func WarningAdminRoutes(admin fiber.Router, ctl *controller.WarningController) {
	admin.Get("/warnings", ctl.List)
}
