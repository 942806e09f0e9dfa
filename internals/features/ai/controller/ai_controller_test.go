package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laporkampus_backend/internals/configs"
	"laporkampus_backend/internals/features/ai/service"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warningsvc "laporkampus_backend/internals/features/reports/warnings/service"
	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

func laravelStub(t *testing.T) *laravel.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"judul":"Lampu mati","kategori":"Fasilitas","status":"Pending","tanggal_lapor":"2025-01-01","respon":null},
			{"id":2,"judul":"Nilai","kategori":"Akademik","status":"Selesai","tanggal_lapor":"2025-01-02","respon":"Sudah"}
		]}`))
	}))
	t.Cleanup(srv.Close)
	return laravel.NewClient(srv.URL)
}

func llmStub(t *testing.T, status int, content string) service.Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`))
	}))
	t.Cleanup(srv.Close)
	return service.NewRESTProvider(service.RESTConfig{URL: srv.URL}, nil)
}

func newAIApp(t *testing.T, ctl *AIController, settings sessionsvc.Settings) *fiber.App {
	t.Helper()
	store := sessionsvc.NewMemoryStore()
	sess, err := sessionsvc.Start(context.Background(), store, sessionsvc.Login{
		Token: "tok", ExpiresAt: time.Now().Add(time.Hour), UserID: "1", Role: "admin",
	})
	require.NoError(t, err)
	require.NoError(t, sess.UpdateSettings(context.Background(), settings))

	app := fiber.New(fiber.Config{ErrorHandler: helper.NewErrorHandler(zap.NewNop())})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authMw.LocSession, sess)
		c.Locals(authMw.LocLaravelToken, "tok")
		return c.Next()
	})
	app.Post("/ai/chat", ctl.Chat)
	app.Get("/admin/ai/summary", ctl.Summary)
	app.Post("/admin/ai/auto-respond", ctl.AutoRespond)
	app.Get("/admin/ai/jobs/:id", ctl.JobStatus)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestChatFormatsReply(t *testing.T) {
	ctl := NewAIController(laravelStub(t), llmStub(t, 0, "Silakan **isi formulir**"), nil, service.NewThrottle(time.Second), nil, zap.NewNop())
	app := newAIApp(t, ctl, sessionsvc.Settings{})

	resp := post(t, app, "/ai/chat", `{"message":"cara lapor?","history":[{"role":"user","text":"halo"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	require.NoError(t, readJSON(resp, &body))
	assert.Equal(t, "Silakan <strong>isi formulir</strong>", body.Data.Reply)
}

func TestChatWithoutProvider(t *testing.T) {
	ctl := NewAIController(laravelStub(t), nil, nil, service.NewThrottle(time.Second), nil, zap.NewNop())
	resp := post(t, newAIApp(t, ctl, sessionsvc.Settings{}), "/ai/chat", `{"message":"halo"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestChatRateLimitedUpstream(t *testing.T) {
	ctl := NewAIController(laravelStub(t), llmStub(t, http.StatusTooManyRequests, ""), nil, service.NewThrottle(time.Second), nil, zap.NewNop())
	resp := post(t, newAIApp(t, ctl, sessionsvc.Settings{}), "/ai/chat", `{"message":"halo"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	var body helper.ErrorResponse
	require.NoError(t, readJSON(resp, &body))
	assert.Equal(t, service.MsgRateLimit, body.Message)
}

func TestSummaryThrottledPerSession(t *testing.T) {
	ctl := NewAIController(laravelStub(t), llmStub(t, 0, "Ringkas"), nil, service.NewThrottle(10*time.Second),
		warningsvc.NewDeriver(configs.DefaultPolicy().Warning), zap.NewNop())
	app := newAIApp(t, ctl, sessionsvc.Settings{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ai/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/admin/ai/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestAutoRespondRequiresSetting(t *testing.T) {
	ar := service.NewAutoResponder(nil, nil, time.Second, nil)
	ctl := NewAIController(laravelStub(t), nil, ar, service.NewThrottle(time.Second), nil, zap.NewNop())
	resp := post(t, newAIApp(t, ctl, sessionsvc.Settings{}), "/admin/ai/auto-respond", `{}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAutoRespondQueuesPendingWithoutResponses(t *testing.T) {
	// worker tidak dijalankan: hanya cek antrean + status job
	ar := service.NewAutoResponder(nil, nil, time.Second, nil)
	ctl := NewAIController(laravelStub(t), nil, ar, service.NewThrottle(time.Second), nil, zap.NewNop())
	app := newAIApp(t, ctl, sessionsvc.Settings{AutoResponseEnabled: true, AutoResponseTemplate: "Terima kasih"})

	resp := post(t, app, "/admin/ai/auto-respond", "")
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body struct {
		Data struct {
			Jobs []struct {
				JobID    string `json:"jobId"`
				ReportID string `json:"reportId"`
			} `json:"jobs"`
		} `json:"data"`
	}
	require.NoError(t, readJSON(resp, &body))
	require.Len(t, body.Data.Jobs, 1)
	assert.Equal(t, "1", body.Data.Jobs[0].ReportID)

	r, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ai/jobs/"+body.Data.Jobs[0].JobID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.StatusCode)

	r, err = app.Test(httptest.NewRequest(http.MethodGet, "/admin/ai/jobs/tidak-ada", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, r.StatusCode)
}

func TestSelectAutoRespondTargets(t *testing.T) {
	reports := []report.Report{
		{ID: "1", Status: report.StatusPending},
		{ID: "2", Status: report.StatusPending, Responses: []report.Response{{Message: "ok"}}},
		{ID: "3", Status: report.StatusInProgress},
	}
	got := SelectAutoRespondTargets(reports, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = SelectAutoRespondTargets(reports, []string{"3", "9"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func readJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
