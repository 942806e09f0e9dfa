package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// OnlyRoles validasi role + custom error message. Pembandingan case-insensitive.
func OnlyRoles(customForbiddenMessage string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Anda tidak memiliki akses ke resource ini"
	}
	return func(c *fiber.Ctx) error {
		role := UserRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role tidak ditemukan")
		}
		if _, ok := allowed[role]; ok {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}
