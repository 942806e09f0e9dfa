package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, ctrl *controller.NotificationController) {
	notification := user.Group("/notifications")
	notification.Get("/", ctrl.GetNotifications)
	notification.Post("/read", ctrl.MarkAsRead)
	notification.Post("/read-all", ctrl.MarkAllAsRead)
}
