package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"laporkampus_backend/internals/features/reports/exports/service"
	laporansvc "laporkampus_backend/internals/features/reports/laporan/service"
	warnsvc "laporkampus_backend/internals/features/reports/warnings/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type ExportController struct {
	API      *laravel.Client
	Warnings *warnsvc.Deriver
	Now      func() time.Time
}

func NewExportController(api *laravel.Client, w *warnsvc.Deriver) *ExportController {
	return &ExportController{API: api, Warnings: w, Now: time.Now}
}

// 🟢 GET /api/admin/laporan/export?format=xlsx|csv&status=&category=&q=
func (ctl *ExportController) Export(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		return fiber.NewError(fiber.StatusBadRequest, "format harus xlsx atau csv")
	}

	reports, err := ctl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	f := laporansvc.ListFilter{Query: c.Query("q"), Status: c.Query("status"), Category: c.Query("category")}
	all, _ := laporansvc.List(reports, f, helper.Params{Page: 1, PerPage: len(reports) + 1, SortBy: "date", SortOrder: "desc"})

	now := ctl.Now()
	name := fmt.Sprintf("laporan_%s.%s", now.Format("20060102_150405"), format)

	var data []byte
	switch format {
	case "csv":
		data, err = service.BuildCSV(all)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	default:
		data, err = service.BuildXLSX(all, ctl.Warnings.Derive(all, now))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(data)
}
