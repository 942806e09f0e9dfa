package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"laporkampus_backend/internals/features/ai/dto"
	"laporkampus_backend/internals/features/ai/service"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warnmodel "laporkampus_backend/internals/features/reports/warnings/model"
	warningsvc "laporkampus_backend/internals/features/reports/warnings/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

type AIController struct {
	API       *laravel.Client
	Provider  service.Provider // nil = AI belum dikonfigurasi
	Responder *service.AutoResponder
	Throttle  *service.Throttle
	Warnings  *warningsvc.Deriver
	Validator *validator.Validate
	Timeout   time.Duration
	Log       *zap.Logger
	Now       func() time.Time
}

func NewAIController(api *laravel.Client, p service.Provider, r *service.AutoResponder, th *service.Throttle, w *warningsvc.Deriver, log *zap.Logger) *AIController {
	return &AIController{
		API:       api,
		Provider:  p,
		Responder: r,
		Throttle:  th,
		Warnings:  w,
		Validator: validator.New(),
		Timeout:   45 * time.Second,
		Log:       log,
		Now:       time.Now,
	}
}

func (ctl *AIController) ensureProvider() error {
	if ctl.Provider == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, service.ErrNotConfigured.Error())
	}
	return nil
}

// llmError mengubah error LLM menjadi pesan yang aman untuk pengguna.
func (ctl *AIController) llmError(err error) error {
	ctl.Log.Warn("permintaan AI gagal", zap.Error(err))
	if service.IsRateLimit(err) {
		return fiber.NewError(fiber.StatusTooManyRequests, service.MsgRateLimit)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fiber.NewError(fiber.StatusGatewayTimeout, service.MsgGeneric)
	}
	return fiber.NewError(fiber.StatusBadGateway, service.UserMessage(err))
}

// llmContext tidak ikut timeout request; LLM bisa lebih lama dari guard API.
func (ctl *AIController) llmContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ctl.Timeout)
}

// 🟢 POST /api/ai/chat
func (ctl *AIController) Chat(c *fiber.Ctx) error {
	if err := ctl.ensureProvider(); err != nil {
		return err
	}
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx, cancel := ctl.llmContext()
	defer cancel()
	cs, err := ctl.Provider.NewChatSession(ctx, req.History, service.ChatInstruction)
	if err != nil {
		return ctl.llmError(err)
	}
	reply, err := cs.SendMessage(ctx, req.Message)
	if err != nil {
		return ctl.llmError(err)
	}
	return helper.JsonOK(c, "Balasan AI", dto.ChatResponse{Reply: service.FormatReply(reply), Provider: ctl.Provider.Name()})
}

// 🟢 POST /api/ai/translate
func (ctl *AIController) Translate(c *fiber.Ctx) error {
	if err := ctl.ensureProvider(); err != nil {
		return err
	}
	var req dto.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx, cancel := ctl.llmContext()
	defer cancel()
	out, err := service.Ask(ctx, ctl.Provider, "", service.TranslationPrompt(req.Text, req.Target))
	if err != nil {
		return ctl.llmError(err)
	}
	return helper.JsonOK(c, "Hasil terjemahan", fiber.Map{"translation": strings.TrimSpace(out)})
}

// 🟢 GET /api/admin/ai/summary
func (ctl *AIController) Summary(c *fiber.Ctx) error {
	if err := ctl.ensureProvider(); err != nil {
		return err
	}
	if ok, wait := ctl.Throttle.Allow(throttleKey(c)); !ok {
		secs := int(math.Ceil(wait.Seconds()))
		c.Set(fiber.HeaderRetryAfter, fmt.Sprint(secs))
		return fiber.NewError(fiber.StatusTooManyRequests,
			fmt.Sprintf("Tunggu %d detik sebelum meminta ringkasan lagi", secs))
	}

	reports, err := ctl.API.GetReports(c.UserContext(), authMw.LaravelToken(c))
	if err != nil {
		return err
	}
	stats := BuildSummaryStats(reports, ctl.Warnings, ctl.Now())

	ctx, cancel := ctl.llmContext()
	defer cancel()
	out, err := service.Ask(ctx, ctl.Provider, service.AdminInstruction, service.SummaryPrompt(stats))
	if err != nil {
		return ctl.llmError(err)
	}
	return helper.JsonOK(c, "Ringkasan AI", fiber.Map{"summary": service.FormatReply(out), "total": stats.Total})
}

// BuildSummaryStats menghitung angka ringkas untuk prompt ringkasan.
func BuildSummaryStats(reports []report.Report, w *warningsvc.Deriver, now time.Time) service.SummaryStats {
	s := service.SummaryStats{
		Total:      len(reports),
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, r := range reports {
		s.ByStatus[r.Status]++
		s.ByCategory[r.Category]++
	}
	if w != nil {
		ws := w.Derive(reports, now)
		s.Overdue = len(ws)
		for _, x := range ws {
			if x.Priority == warnmodel.PriorityCritical && len(s.Critical) < 5 {
				s.Critical = append(s.Critical, x.Title)
			}
		}
	}
	return s
}

// 🟢 POST /api/admin/ai/auto-respond
func (ctl *AIController) AutoRespond(c *fiber.Ctx) error {
	if ctl.Responder == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Auto-response tidak aktif")
	}
	sess := authMw.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	settings, err := sess.Settings(c.UserContext())
	if err != nil {
		return err
	}
	if !settings.AutoResponseEnabled {
		return fiber.NewError(fiber.StatusConflict, "Aktifkan auto-response di pengaturan terlebih dahulu")
	}

	var req dto.AutoRespondRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
		}
	}

	token := authMw.LaravelToken(c)
	reports, err := ctl.API.GetReports(c.UserContext(), token)
	if err != nil {
		return err
	}

	out := dto.AutoRespondResponse{Jobs: []dto.QueuedJob{}, Skipped: []string{}}
	for _, r := range SelectAutoRespondTargets(reports, req.IDs) {
		id, err := ctl.Responder.Enqueue(service.Job{Token: token, Report: r, Template: settings.AutoResponseTemplate})
		if err != nil {
			out.Skipped = append(out.Skipped, r.ID)
			continue
		}
		out.Jobs = append(out.Jobs, dto.QueuedJob{JobID: id, ReportID: r.ID})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"message": "Auto-response masuk antrean",
		"data":    out,
	})
}

// SelectAutoRespondTargets: ids kosong → laporan Pending tanpa balasan.
func SelectAutoRespondTargets(reports []report.Report, ids []string) []report.Report {
	if len(ids) == 0 {
		return helper.FilterSlice(reports, func(r report.Report) bool {
			return r.Status == report.StatusPending && len(r.Responses) == 0
		})
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return helper.FilterSlice(reports, func(r report.Report) bool { return want[r.ID] })
}

// 🟢 GET /api/admin/ai/jobs/:id
func (ctl *AIController) JobStatus(c *fiber.Ctx) error {
	if ctl.Responder == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Auto-response tidak aktif")
	}
	st, ok := ctl.Responder.Status(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Job tidak ditemukan")
	}
	return helper.JsonOK(c, "Status job", st)
}

func throttleKey(c *fiber.Ctx) string {
	if sess := authMw.CurrentSession(c); sess != nil {
		return sess.ID()
	}
	return c.IP()
}
