package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LaporKampus API jalan 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "memory"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if db != nil {
			dbStatus = "Connected"
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"session_store":  dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
