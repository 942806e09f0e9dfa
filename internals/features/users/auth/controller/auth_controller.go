package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"laporkampus_backend/internals/features/users/auth/dto"
	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type AuthController struct {
	API          *laravel.Client
	Store        sessionsvc.Store
	Secret       string
	SessionTTL   time.Duration // dipakai kalau Laravel tidak mengirim masa berlaku token
	SecureCookie bool
	Validator    *validator.Validate
	Log          *zap.Logger
}

func NewAuthController(api *laravel.Client, store sessionsvc.Store, secret string, ttl time.Duration, secure bool, log *zap.Logger) *AuthController {
	return &AuthController{
		API:          api,
		Store:        store,
		Secret:       secret,
		SessionTTL:   ttl,
		SecureCookie: secure,
		Validator:    validator.New(),
		Log:          log,
	}
}

// 🟢 POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	res, err := ac.API.Login(ctx, req.Email, req.Password, ac.SessionTTL)
	if err != nil {
		if laravel.IsStatus(err, http.StatusUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return err
	}

	sess, err := sessionsvc.Start(ctx, ac.Store, sessionsvc.Login{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
		UserID:    res.UserID,
		Role:      res.Role,
	})
	if err != nil {
		return err
	}
	token, err := sessionsvc.IssueToken(ac.Secret, sess.ID(), res.ExpiresAt)
	if err != nil {
		return err
	}
	helper.SetSessionCookie(c, token, res.ExpiresAt, ac.SecureCookie)
	ac.Log.Info("login berhasil", zap.String("user_id", res.UserID), zap.String("role", res.Role))

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token:     token,
		ExpiresAt: res.ExpiresAt.Format(time.RFC3339),
		User:      res.User,
		Role:      res.Role,
	})
}

// 🟢 POST /api/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	out, err := ac.API.Register(c.UserContext(), req.ToPayload())
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Registrasi berhasil, silakan login", out)
}

// 🟢 POST /api/logout
// Tidak butuh sesi valid: token rusak/kedaluwarsa tetap dianggap sukses logout.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	sid, err := sessionsvc.ParseToken(ac.Secret, helper.GetRawAccessToken(c))
	helper.ClearSessionCookie(c)
	if err == nil {
		if err := sessionsvc.New(ac.Store, sid).Logout(c.UserContext()); err != nil {
			return err
		}
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/profile
// Profil terbaru dari Laravel; kalau endpoint tidak ada, pakai data user saat login.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	profile, err := ac.API.Profile(c.UserContext(), authMw.LaravelToken(c))
	if err == nil {
		return helper.JsonOK(c, "Profil pengguna", profile)
	}
	if !laravel.IsStatus(err, http.StatusNotFound) {
		return err
	}
	user, err := sess.User(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Profil pengguna", user)
}

// 🟢 GET /api/program-studi
func (ac *AuthController) ProgramStudi(c *fiber.Ctx) error {
	items, err := ac.API.ProgramStudi(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar program studi", items)
}
