package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	"laporkampus_backend/internals/laravel"
)

// NewErrorHandler memetakan error dari handler ke bentuk ErrorResponse.
//   - *fiber.Error          → kode & pesannya
//   - *laravel.APIError     → status Laravel (422 membawa daftar field)
//   - laravel.ErrNetwork    → 503 "periksa koneksi"
//   - sesi kedaluwarsa      → 401
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}

		var apiErr *laravel.APIError
		if errors.As(err, &apiErr) {
			status := apiErr.Status
			if status < 400 || status > 599 {
				status = http.StatusBadGateway
			}
			if len(apiErr.Fields) > 0 {
				return JsonFieldError(c, status, apiErr.Message, apiErr.Fields)
			}
			return JsonError(c, status, apiErr.Message)
		}

		switch {
		case errors.Is(err, laravel.ErrNetwork):
			log.Warn("backend Laravel tidak terjangkau", zap.String("path", c.Path()), zap.Error(err))
			return JsonError(c, fiber.StatusServiceUnavailable, laravel.ErrNetwork.Error())
		case errors.Is(err, sessionsvc.ErrExpired),
			errors.Is(err, sessionsvc.ErrNotFound),
			errors.Is(err, sessionsvc.ErrInvalidToken):
			ClearSessionCookie(c)
			return JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
