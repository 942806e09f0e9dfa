package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"laporkampus_backend/internals/features/admin/dto"
	"laporkampus_backend/internals/features/admin/service"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warnsvc "laporkampus_backend/internals/features/reports/warnings/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type AdminController struct {
	API       *laravel.Client
	Warnings  *warnsvc.Deriver
	Validator *validator.Validate
	Log       *zap.Logger
	Now       func() time.Time
}

func NewAdminController(api *laravel.Client, w *warnsvc.Deriver, log *zap.Logger) *AdminController {
	return &AdminController{API: api, Warnings: w, Validator: validator.New(), Log: log, Now: time.Now}
}

// 🟢 GET /api/admin/dashboard
func (ctl *AdminController) Dashboard(c *fiber.Ctx) error {
	token := authMw.LaravelToken(c)
	g, ctx := errgroup.WithContext(c.UserContext())

	var (
		reports []report.Report
		users   []service.Record
	)
	g.Go(func() error {
		var err error
		reports, err = ctl.API.GetReports(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = ctl.API.AdminUsers(ctx, token)
		if err != nil {
			// dashboard tetap tampil tanpa jumlah user
			ctl.Log.Warn("daftar user gagal diambil", zap.Error(err))
			users = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return helper.JsonOK(c, "Dashboard admin", service.BuildDashboard(reports, len(users), ctl.Warnings, ctl.Now()))
}

// 🟢 GET /api/admin/users?q=&role=&page=&per_page=
func (ctl *AdminController) Users(c *fiber.Ctx) error {
	users, err := ctl.API.AdminUsers(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	page, meta := service.ListUsers(users, c.Query("q"), c.Query("role"), p)
	return helper.JsonList(c, "Daftar pengguna", page, meta)
}

// 🟢 GET /api/admin/feedback?q=&status=
func (ctl *AdminController) Feedback(c *fiber.Ctx) error {
	items, err := ctl.API.Feedback(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	page, meta := service.ListFeedback(items, c.Query("q"), c.Query("status"), p)
	return helper.JsonList(c, "Daftar feedback", page, meta)
}

// 🟡 PUT /api/admin/feedback/:id
func (ctl *AdminController) UpdateFeedback(c *fiber.Ctx) error {
	var req dto.UpdateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	payload := req.ToPayload()
	if len(payload) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada perubahan")
	}
	out, err := ctl.API.UpdateFeedback(c.UserContext(), authMw.LaravelToken(c), c.Params("id"), payload)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Feedback diperbarui", out)
}

// 🔴 DELETE /api/admin/feedback/:id
func (ctl *AdminController) DeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctl.API.DeleteFeedback(c.UserContext(), authMw.LaravelToken(c), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Feedback dihapus", fiber.Map{"id": id})
}
