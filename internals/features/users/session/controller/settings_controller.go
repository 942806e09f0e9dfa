package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type SettingsController struct {
	Validator *validator.Validate
}

func NewSettingsController() *SettingsController {
	return &SettingsController{Validator: validator.New()}
}

// UpdateSettingsRequest: field pointer supaya PUT parsial tidak menimpa nilai lain.
type UpdateSettingsRequest struct {
	AutoResponseEnabled  *bool   `json:"autoResponseEnabled"`
	AutoResponseTemplate *string `json:"autoResponseTemplate" validate:"omitempty,max=1000"`
	EmailNotifications   *bool   `json:"emailNotifications"`
}

// 🟢 GET /api/settings
func (ctl *SettingsController) Get(c *fiber.Ctx) error {
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	s, err := sess.Settings(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Pengaturan", s)
}

// 🟡 PUT /api/settings
func (ctl *SettingsController) Update(c *fiber.Ctx) error {
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	cur, err := sess.Settings(ctx)
	if err != nil {
		return err
	}
	next := apply(cur, req)
	if err := sess.UpdateSettings(ctx, next); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Pengaturan disimpan", next)
}

func apply(cur service.Settings, req UpdateSettingsRequest) service.Settings {
	if req.AutoResponseEnabled != nil {
		cur.AutoResponseEnabled = *req.AutoResponseEnabled
	}
	if req.AutoResponseTemplate != nil {
		cur.AutoResponseTemplate = strings.TrimSpace(*req.AutoResponseTemplate)
	}
	if req.EmailNotifications != nil {
		cur.EmailNotifications = *req.EmailNotifications
	}
	return cur
}
