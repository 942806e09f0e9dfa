package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"laporkampus_backend/internals/configs"
	database "laporkampus_backend/internals/databases"
	aiService "laporkampus_backend/internals/features/ai/service"
	mailerService "laporkampus_backend/internals/features/mailer/service"
	personnelService "laporkampus_backend/internals/features/personnel/service"
	reportController "laporkampus_backend/internals/features/reports/laporan/controller"
	reportService "laporkampus_backend/internals/features/reports/laporan/service"
	scheduler "laporkampus_backend/internals/features/users/auth/scheduler"
	sessionService "laporkampus_backend/internals/features/users/session/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/helpers/storage"
	"laporkampus_backend/internals/laravel"
	middlewares "laporkampus_backend/internals/middlewares"
	routes "laporkampus_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	log := configs.NewLogger()
	defer func() { _ = log.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               int(storage.MaxUploadSize) + 1<<20,
		ErrorHandler:            helper.NewErrorHandler(log),
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, log, configs.CorsOrigins, 30*time.Second)

	// 🔌 penyimpanan sesi: Postgres kalau ada, memori kalau tidak
	var (
		db       *gorm.DB
		sessions sessionService.Store
	)
	if configs.DatabaseConfigured() {
		var err error
		db, err = database.ConnectDB(log)
		if err != nil {
			log.Fatal("DB gagal", zap.Error(err))
		}
		if err := database.TunePool(db); err != nil {
			log.Warn("tune pool gagal", zap.Error(err))
		}
		gs, err := sessionService.NewGormStore(db)
		if err != nil {
			log.Fatal("session store gagal", zap.Error(err))
		}
		sessions = gs
	} else {
		log.Warn("DB tidak dikonfigurasi, sesi disimpan di memori")
		sessions = sessionService.NewMemoryStore()
	}

	// 📜 policy + roster
	policy, err := configs.LoadPolicy(configs.GetEnv("POLICY_FILE"))
	if err != nil {
		log.Fatal("policy tidak valid", zap.Error(err))
	}
	rawRoster, err := configs.RosterYAML(configs.GetEnv("PERSONNEL_FILE"))
	if err != nil {
		log.Fatal("roster tidak terbaca", zap.Error(err))
	}
	roster, err := personnelService.LoadRoster(rawRoster)
	if err != nil {
		log.Fatal("roster tidak valid", zap.Error(err))
	}

	api := laravel.NewClient(configs.LaravelAPIURL, laravel.WithLogger(log))

	// 🤖 LLM
	provider, err := aiService.NewProvider(ctx, aiService.Config{
		Provider:     configs.GetEnv("LLM_PROVIDER"),
		GeminiAPIKey: configs.GetEnv("GEMINI_API_KEY"),
		GeminiModel:  configs.GetEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		RESTURL:      configs.GetEnv("LLM_API_URL"),
		RESTKey:      configs.GetEnv("LLM_API_KEY"),
		RESTModel:    configs.GetEnv("LLM_MODEL"),
		Timeout:      45 * time.Second,
	}, log)
	switch {
	case errors.Is(err, aiService.ErrNotConfigured):
		log.Warn("AI nonaktif: GEMINI_API_KEY / LLM_API_URL kosong")
		provider = nil
	case err != nil:
		log.Fatal("provider AI gagal", zap.Error(err))
	}
	responder := aiService.NewAutoResponder(provider, reportService.NewLifecycle(api, log),
		policy.AI.AutoResponseSpacing, log)
	go responder.Run(ctx)

	// ✉️ e-mail status (opsional)
	var notifier reportController.StatusNotifier
	smtp := mailerService.SMTPConfig{
		Host:     configs.GetEnv("SMTP_HOST"),
		Port:     configs.GetEnvInt("SMTP_PORT", 587),
		User:     configs.GetEnv("SMTP_USER"),
		Password: configs.GetEnv("SMTP_PASSWORD"),
		From:     configs.GetEnv("SMTP_FROM"),
	}
	if smtp.Configured() {
		notifier = mailerService.NewStatusNotifier(mailerService.NewSMTPSender(smtp), log)
	}

	uploads, err := storage.NewLocalStore(configs.UploadDir, "/uploads", log)
	if err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	// ⏱ bersihkan sesi kedaluwarsa
	scheduler.StartSessionCleanupScheduler(ctx, sessions, 6*time.Hour, 24*time.Hour, log)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		Log:          log,
		DB:           db,
		API:          api,
		Sessions:     sessions,
		Policy:       policy,
		Matcher:      personnelService.NewMatcher(roster),
		Provider:     provider,
		Responder:    responder,
		Notifier:     notifier,
		Uploads:      uploads,
		Secret:       configs.JWTSecret,
		SessionTTL:   time.Duration(configs.GetEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		SecureCookie: configs.GetEnvBool("COOKIE_SECURE", os.Getenv("RAILWAY_ENVIRONMENT") != ""),
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Info("✅ Listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
	database.Close(db)
}
