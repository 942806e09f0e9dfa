// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
)

// Kunci Locals yang diisi SessionAuth.
const (
	LocSession      = "session"
	LocLaravelToken = "laravel_token"
	LocUserID       = "user_id"
	LocUserRole     = "userRole"
)

type Opts struct {
	Secret string
	Store  sessionsvc.Store
	Log    *zap.Logger
}

// SessionAuth memvalidasi JWT sesi, memuat state dari Store, lalu memeriksa
// token Laravel belum kedaluwarsa. Hasilnya disimpan di Locals.
func SessionAuth(opts Opts) fiber.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Silakan login terlebih dahulu")
		}

		sid, err := sessionsvc.ParseToken(opts.Secret, raw)
		if err != nil {
			log.Debug("token sesi ditolak", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid, silakan login ulang")
		}

		sess := sessionsvc.New(opts.Store, sid)
		token, err := sess.Token(c.UserContext())
		if err != nil {
			if errors.Is(err, sessionsvc.ErrExpired) || errors.Is(err, sessionsvc.ErrNotFound) {
				helper.ClearSessionCookie(c)
				return fiber.NewError(fiber.StatusUnauthorized, "Sesi sudah berakhir, silakan login ulang")
			}
			return err
		}

		userID, _ := sess.UserID(c.UserContext())
		role, _ := sess.Role(c.UserContext())

		c.Locals(LocSession, sess)
		c.Locals(LocLaravelToken, token)
		c.Locals(LocUserID, userID)
		c.Locals(LocUserRole, role)
		return c.Next()
	}
}

// CurrentSession sesi milik request; nil kalau route tidak lewat SessionAuth.
func CurrentSession(c *fiber.Ctx) *sessionsvc.Session {
	s, _ := c.Locals(LocSession).(*sessionsvc.Session)
	return s
}

// LaravelToken bearer untuk meneruskan request ke Laravel.
func LaravelToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocLaravelToken).(string)
	return s
}

func UserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocUserID).(string)
	return s
}

func UserRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocUserRole).(string)
	return strings.ToLower(strings.TrimSpace(s))
}
