package controller

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"laporkampus_backend/internals/features/reports/laporan/dto"
	"laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/features/reports/laporan/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

// StatusNotifier dipanggil setelah status laporan berubah (e-mail ke pelapor).
type StatusNotifier interface {
	NotifyStatus(ctx context.Context, r model.Report, status, message string) error
}

type ReportController struct {
	API       *laravel.Client
	Lifecycle *service.Lifecycle
	Notifier  StatusNotifier
	Validator *validator.Validate
	Log       *zap.Logger
}

func NewReportController(api *laravel.Client, notifier StatusNotifier, log *zap.Logger) *ReportController {
	return &ReportController{
		API:       api,
		Lifecycle: service.NewLifecycle(api, log),
		Notifier:  notifier,
		Validator: validator.New(),
		Log:       log,
	}
}

// 🟢 GET /api/laporan?page=&per_page=&q=&status=&category=&sort_by=&order=&mine=
func (ctl *ReportController) List(c *fiber.Ctx) error {
	reports, err := ctl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}

	f := service.ListFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if c.QueryBool("mine") {
		f.Email = ctl.sessionEmail(c)
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)
	page, meta := service.List(reports, f, p)
	return helper.JsonList(c, "Daftar laporan", dto.ToReportResponseList(page), meta)
}

// 🟢 GET /api/laporan/:id
func (ctl *ReportController) Detail(c *fiber.Ctx) error {
	r, err := ctl.API.GetReport(c.UserContext(), authMw.LaravelToken(c), c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail laporan", dto.ToReportResponse(r))
}

// 🟢 POST /api/laporan
func (ctl *ReportController) Create(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	out, err := ctl.API.CreateReport(c.UserContext(), authMw.LaravelToken(c), req.ToPayload())
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Laporan berhasil dikirim", out)
}

// 🟢 POST /api/laporan/:id/respond
func (ctl *ReportController) Respond(c *fiber.Ctx) error {
	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx, token := c.UserContext(), authMw.LaravelToken(c)
	r, err := ctl.API.GetReport(ctx, token, c.Params("id"))
	if err != nil {
		return err
	}
	out, err := ctl.Lifecycle.Respond(ctx, token, r, req.Message)
	if err != nil {
		return err
	}
	ctl.notify(c, r, model.StatusInProgress, req.Message)
	return helper.JsonUpdated(c, "Respon berhasil dikirim", out)
}

// 🟢 POST /api/laporan/:id/resolve
func (ctl *ReportController) Resolve(c *fiber.Ctx) error {
	ctx, token := c.UserContext(), authMw.LaravelToken(c)
	r, err := ctl.API.GetReport(ctx, token, c.Params("id"))
	if err != nil {
		return err
	}
	out, err := ctl.Lifecycle.Resolve(ctx, token, r)
	if err != nil {
		return err
	}
	ctl.notify(c, r, model.StatusSelesai, r.LastResponse().Message)
	return helper.JsonUpdated(c, "Laporan ditandai selesai", out)
}

// notify kirim e-mail kalau admin mengaktifkan emailNotifications. Gagal kirim tidak menggagalkan request.
func (ctl *ReportController) notify(c *fiber.Ctx, r model.Report, status, message string) {
	if ctl.Notifier == nil {
		return
	}
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return
	}
	settings, err := sess.Settings(c.UserContext())
	if err != nil || !settings.EmailNotifications {
		return
	}
	if err := ctl.Notifier.NotifyStatus(c.UserContext(), r, status, message); err != nil {
		ctl.Log.Warn("notifikasi email dilewati", zap.String("id", r.ID), zap.Error(err))
	}
}

func (ctl *ReportController) sessionEmail(c *fiber.Ctx) string {
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return ""
	}
	user, err := sess.User(c.UserContext())
	if err != nil {
		return ""
	}
	email, _ := user["email"].(string)
	return email
}
