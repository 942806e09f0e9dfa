package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"laporkampus_backend/internals/features/personnel/model"
	"laporkampus_backend/internals/features/personnel/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type PersonnelController struct {
	API     *laravel.Client
	Matcher *service.Matcher
	LLM     *service.LLMMatcher // nil = mode llm tidak tersedia
	Log     *zap.Logger
}

func NewPersonnelController(api *laravel.Client, m *service.Matcher, llm *service.LLMMatcher, log *zap.Logger) *PersonnelController {
	return &PersonnelController{API: api, Matcher: m, LLM: llm, Log: log}
}

// 🟢 GET /api/admin/personnel
func (ctl *PersonnelController) Roster(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Daftar petugas", ctl.Matcher.Roster())
}

// 🟢 GET /api/admin/personnel/ranking
func (ctl *PersonnelController) Ranking(c *fiber.Ctx) error {
	reports, err := ctl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Ranking petugas", ctl.Matcher.Ranking(reports))
}

// 🟢 GET /api/admin/personnel/match/:id?mode=keyword|llm
func (ctl *PersonnelController) Match(c *fiber.Ctx) error {
	r, err := ctl.API.GetReport(c.UserContext(), authMw.LaravelToken(c), c.Params("id"))
	if err != nil {
		return err
	}

	var out model.Suggestion
	if c.Query("mode") == "llm" {
		if ctl.LLM == nil || ctl.LLM.Provider == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Layanan AI belum dikonfigurasi")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		out, err = ctl.LLM.Suggest(ctx, r)
		if err != nil {
			// tetap kirim fallback; admin masih bisa menghubungi petugas default
			ctl.Log.Warn("saran petugas via AI gagal", zap.String("id", r.ID), zap.Error(err))
		}
	} else {
		m := ctl.Matcher.Match(r)
		out = model.Suggestion{Personnel: m.Personnel, Source: "keyword", Confidence: 1}
		if m.Fallback {
			out.Source = "fallback"
			out.Confidence = 0
		}
	}
	out.WhatsApp = service.WhatsAppLink(out.Personnel, r)
	return helper.JsonOK(c, "Rekomendasi petugas", out)
}
