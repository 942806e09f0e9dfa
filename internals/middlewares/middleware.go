package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"laporkampus_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan: recover → request id → log → cors → limiter.
func SetupMiddlewares(app *fiber.App, log *zap.Logger, origins []string, timeout time.Duration) {
	app.Use(RecoveryMiddleware(log))
	app.Use(logger.RequestID(log, timeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(origins))
	app.Use(GlobalRateLimiter())
}
