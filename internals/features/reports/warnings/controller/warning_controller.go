package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/reports/warnings/model"
	"laporkampus_backend/internals/features/reports/warnings/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type WarningController struct {
	API     *laravel.Client
	Deriver *service.Deriver
	Now     func() time.Time
}

func NewWarningController(api *laravel.Client, d *service.Deriver) *WarningController {
	return &WarningController{API: api, Deriver: d, Now: time.Now}
}

// 🟢 GET /api/admin/warnings?priority=critical
func (ctl *WarningController) List(c *fiber.Ctx) error {
	reports, err := ctl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	all := ctl.Deriver.Derive(reports, ctl.Now())

	items := all
	if p := c.Query("priority"); p != "" {
		items = helper.FilterSlice(all, func(w model.Warning) bool { return w.Priority == p })
	}
	return helper.JsonOK(c, "Daftar peringatan", fiber.Map{
		"warnings": items,
		"summary":  service.Summarize(all),
	})
}
