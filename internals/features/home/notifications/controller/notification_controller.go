package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/home/notifications/dto"
	"laporkampus_backend/internals/features/home/notifications/service"
	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type NotificationController struct {
	API       *laravel.Client
	Deriver   *service.Deriver
	Validator *validator.Validate
	Now       func() time.Time
}

func NewNotificationController(api *laravel.Client, d *service.Deriver) *NotificationController {
	return &NotificationController{API: api, Deriver: d, Validator: validator.New(), Now: time.Now}
}

func (ctrl *NotificationController) current(c *fiber.Ctx) (dto.NotificationListResponse, error) {
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return dto.NotificationListResponse{}, fiber.ErrUnauthorized
	}
	reports, err := ctrl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return dto.NotificationListResponse{}, err
	}
	read, err := sess.ReadSet(c.UserContext())
	if err != nil {
		return dto.NotificationListResponse{}, err
	}
	userID, email, err := owner(c, sess)
	if err != nil {
		return dto.NotificationListResponse{}, err
	}
	items := ctrl.Deriver.Derive(service.OwnedBy(reports, userID, email), read, ctrl.Now())
	return dto.NotificationListResponse{Items: items, UnreadCount: service.UnreadCount(items)}, nil
}

// owner: id user dari middleware, fallback ke data sesi.
func owner(c *fiber.Ctx, sess *sessionsvc.Session) (string, string, error) {
	user, err := sess.User(c.UserContext())
	if err != nil {
		return "", "", err
	}
	email, _ := user["email"].(string)
	if id := authMw.UserID(c); id != "" {
		return id, email, nil
	}
	id, err := sess.UserID(c.UserContext())
	return id, email, err
}

// 🟢 GET /api/notifications
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	out, err := ctrl.current(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Daftar notifikasi", out)
}

// 🟢 POST /api/notifications/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	if err := sess.MarkNotificationsRead(c.UserContext(), req.IDs...); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai sebagai dibaca", fiber.Map{"ids": req.IDs})
}

// 🟢 POST /api/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	out, err := ctrl.current(c)
	if err != nil {
		return err
	}
	ids := service.IDs(out.Items)
	if err := authMw.CurrentSession(c).MarkNotificationsRead(c.UserContext(), ids...); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Semua notifikasi ditandai sebagai dibaca", fiber.Map{"count": len(ids)})
}
