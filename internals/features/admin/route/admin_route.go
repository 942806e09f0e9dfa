package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/admin/controller"
)

func AdminRoutes(admin fiber.Router, ctl *controller.AdminController) {
	admin.Get("/dashboard", ctl.Dashboard)
	admin.Get("/users", ctl.Users)

	fb := admin.Group("/feedback")
	fb.Get("/", ctl.Feedback)
	fb.Put("/:id", ctl.UpdateFeedback)
	fb.Delete("/:id", ctl.DeleteFeedback)
}
