package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/personnel/controller"
)

func PersonnelAdminRoutes(admin fiber.Router, ctl *controller.PersonnelController) {
	p := admin.Group("/personnel")
	p.Get("/", ctl.Roster)
	p.Get("/ranking", ctl.Ranking)
	p.Get("/match/:id", ctl.Match)
}
