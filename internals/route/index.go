// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"laporkampus_backend/internals/configs"
	"laporkampus_backend/internals/constants"
	adminController "laporkampus_backend/internals/features/admin/controller"
	adminRoute "laporkampus_backend/internals/features/admin/route"
	aiController "laporkampus_backend/internals/features/ai/controller"
	aiRoute "laporkampus_backend/internals/features/ai/route"
	aiService "laporkampus_backend/internals/features/ai/service"
	notifController "laporkampus_backend/internals/features/home/notifications/controller"
	notifRoute "laporkampus_backend/internals/features/home/notifications/route"
	notifService "laporkampus_backend/internals/features/home/notifications/service"
	personnelController "laporkampus_backend/internals/features/personnel/controller"
	personnelRoute "laporkampus_backend/internals/features/personnel/route"
	personnelService "laporkampus_backend/internals/features/personnel/service"
	exportController "laporkampus_backend/internals/features/reports/exports/controller"
	exportRoute "laporkampus_backend/internals/features/reports/exports/route"
	reportController "laporkampus_backend/internals/features/reports/laporan/controller"
	reportRoute "laporkampus_backend/internals/features/reports/laporan/route"
	warningController "laporkampus_backend/internals/features/reports/warnings/controller"
	warningRoute "laporkampus_backend/internals/features/reports/warnings/route"
	warningService "laporkampus_backend/internals/features/reports/warnings/service"
	uploadController "laporkampus_backend/internals/features/uploads/controller"
	uploadRoute "laporkampus_backend/internals/features/uploads/route"
	authController "laporkampus_backend/internals/features/users/auth/controller"
	authRoute "laporkampus_backend/internals/features/users/auth/route"
	sessionController "laporkampus_backend/internals/features/users/session/controller"
	sessionRoute "laporkampus_backend/internals/features/users/session/route"
	sessionService "laporkampus_backend/internals/features/users/session/service"
	"laporkampus_backend/internals/helpers/storage"
	"laporkampus_backend/internals/laravel"
	"laporkampus_backend/internals/middlewares"
	authMiddleware "laporkampus_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps adalah semua yang dibangun main sebelum route dipasang.
type Deps struct {
	Log          *zap.Logger
	DB           *gorm.DB // nil kalau sesi disimpan di memori
	API          *laravel.Client
	Sessions     sessionService.Store
	Policy       configs.Policy
	Matcher      *personnelService.Matcher
	Provider     aiService.Provider // nil = AI nonaktif
	Responder    *aiService.AutoResponder
	Notifier     reportController.StatusNotifier // nil = e-mail nonaktif
	Uploads      *storage.LocalStore
	Secret       string
	SessionTTL   time.Duration
	SecureCookie bool
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log

	BaseRoutes(app, d.DB)

	warnings := warningService.NewDeriver(d.Policy.Warning)
	sessionAuth := authMiddleware.SessionAuth(authMiddleware.Opts{
		Secret: d.Secret,
		Store:  d.Sessions,
		Log:    log,
	})
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("ini"), constants.AdminOnly...)

	// ===================== PUBLIC =====================
	log.Info("Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api,
		authController.NewAuthController(d.API, d.Sessions, d.Secret, d.SessionTTL, d.SecureCookie, log),
		sessionAuth,
	)

	// ===================== PRIVATE (USER) =====================
	log.Info("Setting up PRIVATE group...")
	user := app.Group("/api", sessionAuth)

	reportRoute.ReportRoutes(user, reportController.NewReportController(d.API, d.Notifier, log), adminOnly)
	notifRoute.NotificationUserRoutes(user,
		notifController.NewNotificationController(d.API, notifService.NewDeriver(d.Policy.Notification)))
	sessionRoute.SettingsRoutes(user, sessionController.NewSettingsController())
	uploadRoute.UploadRoutes(app, user, uploadController.NewUploadController(d.Uploads, log))

	ai := aiController.NewAIController(d.API, d.Provider, d.Responder,
		aiService.NewThrottle(d.Policy.AI.SummaryMinGap), warnings, log)
	aiRoute.AIUserRoutes(user, ai, middlewares.AIRateLimiter())

	// ===================== ADMIN =====================
	log.Info("Setting up ADMIN group (Auth + RoleCheck)...")
	admin := user.Group("/admin", adminOnly)

	warningRoute.WarningAdminRoutes(admin, warningController.NewWarningController(d.API, warnings))
	adminRoute.AdminRoutes(admin, adminController.NewAdminController(d.API, warnings, log))
	aiRoute.AIAdminRoutes(admin, ai)
	exportRoute.ExportAdminRoutes(admin, exportController.NewExportController(d.API, warnings))

	var llm *personnelService.LLMMatcher
	if d.Provider != nil {
		llm = personnelService.NewLLMMatcher(d.Provider, d.Matcher, d.Policy.AI.MatchFallbackConfidence)
	}
	personnelRoute.PersonnelAdminRoutes(admin,
		personnelController.NewPersonnelController(d.API, d.Matcher, llm, log))
}
