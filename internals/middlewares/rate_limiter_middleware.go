package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"laporkampus_backend/internals/configs"
	helper "laporkampus_backend/internals/helpers"
)

func byIP(c *fiber.Ctx) string { return c.IP() }

// bySession memakai token sesi kalau ada supaya beberapa user di balik NAT kampus tidak saling blokir.
func bySession(prefix string) func(*fiber.Ctx) string {
	return func(c *fiber.Ctx) string {
		if tok := helper.GetRawAccessToken(c); tok != "" {
			return prefix + tok
		}
		return prefix + c.IP()
	}
}

func newLimiter(max int, window time.Duration, key func(*fiber.Ctx) string, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   window,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// Global limiter: semua endpoint (RATE_LIMIT_PER_MINUTE, default 100)
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(configs.GetEnvInt("RATE_LIMIT_PER_MINUTE", 100), time.Minute, bySession("g:"),
		"❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
}

// Login lebih ketat, per IP.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, byIP,
		"❌ Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, byIP,
		"❌ Terlalu banyak percobaan pendaftaran. Tunggu beberapa menit ya.")
}

// AI: per sesi, fallback IP.
func AIRateLimiter() fiber.Handler {
	return newLimiter(20, time.Minute, bySession("ai:"),
		"❌ Terlalu banyak permintaan AI. Tunggu sebentar lalu coba lagi.")
}
