package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/reports/exports/controller"
)

func ExportAdminRoutes(admin fiber.Router, ctl *controller.ExportController) {
	admin.Get("/laporan/export", ctl.Export)
}
