package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/uploads/controller"
)

// UploadRoutes: POST /api/upload (butuh sesi) + file statis di /uploads.
func UploadRoutes(app *fiber.App, user fiber.Router, ctl *controller.UploadController) {
	user.Post("/upload", ctl.Upload)
	app.Static("/uploads", ctl.Store.Dir, fiber.Static{
		Compress:      true,
		CacheDuration: 10 * time.Minute,
		MaxAge:        86400,
	})
}
