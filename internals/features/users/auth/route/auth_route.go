package route

import (
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/users/auth/controller"
	rateLimiter "laporkampus_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik + profil (butuh sesi).
func AuthRoutes(api fiber.Router, ctl *controller.AuthController, sessionAuth fiber.Handler) {
	// 🔓 Public
	api.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	api.Post("/register", rateLimiter.RegisterRateLimiter(), ctl.Register)
	api.Post("/logout", ctl.Logout)
	api.Get("/program-studi", ctl.ProgramStudi)

	// 🔐 Protected
	api.Get("/profile", sessionAuth, ctl.Profile)
}
