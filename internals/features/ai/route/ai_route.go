package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/ai/controller"
)

// AIUserRoutes: /api/ai/* untuk semua pengguna yang login.
func AIUserRoutes(api fiber.Router, ctl *controller.AIController, limiter fiber.Handler) {
	ai := api.Group("/ai", limiter)
	ai.Post("/chat", ctl.Chat)
	ai.Post("/translate", ctl.Translate)
}

// AIAdminRoutes: /api/admin/ai/*.
func AIAdminRoutes(admin fiber.Router, ctl *controller.AIController) {
	ai := admin.Group("/ai")
	ai.Get("/summary", ctl.Summary)
	ai.Post("/auto-respond", ctl.AutoRespond)
	ai.Get("/jobs/:id", ctl.JobStatus)
}
