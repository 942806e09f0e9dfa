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

	sessionsvc "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/laravel"
	authMw "laporkampus_backend/internals/middlewares/auth"
)

const secret = "rahasia-test"

func newAuthApp(t *testing.T) (*fiber.App, sessionsvc.Store) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "benar" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token":"lara-tok","expires_in":3600,"user":{"id":7,"name":"Sari","email":"sari@kampus.ac.id","role":"admin"}}`))
		case "/api/profile":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	store := sessionsvc.NewMemoryStore()
	ctl := NewAuthController(laravel.NewClient(srv.URL), store, secret, 24*time.Hour, false, zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: helper.NewErrorHandler(zap.NewNop())})
	app.Post("/login", ctl.Login)
	app.Post("/logout", ctl.Logout)
	app.Get("/profile", authMw.SessionAuth(authMw.Opts{Secret: secret, Store: store, Log: zap.NewNop()}), ctl.Profile)
	return app, store
}

func login(t *testing.T, app *fiber.App, password string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"sari@kampus.ac.id","password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginStartsSessionAndSetsCookie(t *testing.T) {
	app, store := newAuthApp(t)
	resp := login(t, app, "benar")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == helper.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	sid, err := sessionsvc.ParseToken(secret, cookie.Value)
	require.NoError(t, err)
	sess := sessionsvc.New(store, sid)
	tok, err := sess.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lara-tok", tok)
	role, _ := sess.Role(context.Background())
	assert.Equal(t, "admin", role)

	// profil: endpoint Laravel 404 → data user dari sesi
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	pr, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, pr.StatusCode)
	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(pr.Body).Decode(&body))
	assert.Equal(t, "Sari", body.Data["name"])

	// logout menghapus sesi
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	lr, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, lr.StatusCode)
	_, err = store.Load(context.Background(), sid)
	assert.ErrorIs(t, err, sessionsvc.ErrNotFound)

	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	pr, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, pr.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newAuthApp(t)
	assert.Equal(t, http.StatusUnauthorized, login(t, app, "salah").StatusCode)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	app, _ := newAuthApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
