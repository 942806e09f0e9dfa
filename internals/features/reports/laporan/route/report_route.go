package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/reports/laporan/controller"
)

// ReportRoutes mendaftarkan /laporan di bawah grup yang sudah lewat SessionAuth.
func ReportRoutes(api fiber.Router, ctl *controller.ReportController, adminOnly fiber.Handler) {
	laporan := api.Group("/laporan")
	laporan.Get("/", ctl.List)
	laporan.Post("/", ctl.Create)
	laporan.Get("/:id", ctl.Detail)
	laporan.Post("/:id/respond", adminOnly, ctl.Respond)
	laporan.Post("/:id/resolve", adminOnly, ctl.Resolve)
}
