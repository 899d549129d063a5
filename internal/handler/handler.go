package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mantra-gor/BillSane-Admin/internal/middleware"
	"github.com/mantra-gor/BillSane-Admin/internal/service"
	"github.com/mantra-gor/BillSane-Admin/internal/util"
)

// Deps are the services the HTTP layer is built from.
type Deps struct {
	Licenses   *service.LicenseService
	Businesses *service.BusinessService
	Masters    *service.MasterService
	Operators  *service.OperatorService
	Logs       *service.OperationLogService
	Statistics *service.StatisticsService
	Tokens     *util.TokenManager
	// Ping reports storage health for /health. Optional.
	Ping func(ctx context.Context) error
	Log  *zap.Logger
}

type Handler struct {
	Deps
	validate *validator.Validate
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Handler{Deps: d, validate: newValidator()}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.HandleHealth)

	auth := middleware.Auth(h.Tokens)
	adminOnly := middleware.AdminOnly(h.Operators)

	api := app.Group("/api")

	license := api.Group("/license")
	license.Post("/generate", h.HandleGenerateLicense)
	license.Post("/validate", h.HandleValidateLicense)

	api.Post("/business/create", h.HandleCreateBusiness)
	api.Get("/business/:id", auth, h.HandleGetBusiness)

	masters := api.Group("/masters")
	masters.Get("/country/list", h.HandleCountryList)
	masters.Get("/state/list", h.HandleStateList)
	masters.Get("/category/list", h.HandleCategoryList)
	masters.Get("/currency/list", h.HandleCurrencyList)
	masters.Get("/plan/list", h.HandlePlanList)

	admin := api.Group("/admin")
	admin.Post("/login", h.HandleLogin)
	admin.Get("/me", auth, h.HandleMe)
	admin.Post("/change-password", auth, h.HandleChangePassword)
	admin.Get("/login-logs", auth, h.HandleGetLoginLogs)
	admin.Get("/licenses", auth, h.HandleListLicenses)
	admin.Get("/licenses/:id", auth, h.HandleGetLicense)
	admin.Put("/licenses/:id/status", auth, adminOnly, h.HandleSetLicenseStatus)
	admin.Get("/licenses/:id/usage", auth, h.HandleLicenseUsage)
	admin.Get("/statistics", auth, h.HandleLicenseStatistics)
	admin.Get("/logs", auth, adminOnly, h.HandleGetLogs)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if h.Ping != nil {
		if err := h.Ping(c.UserContext()); err != nil {
			h.Log.Warn("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
