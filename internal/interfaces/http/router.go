package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/analytics"
	"github.com/lithrlnd12/keyhubcentral/internal/application/auth"
	"github.com/lithrlnd12/keyhubcentral/internal/application/billing"
	"github.com/lithrlnd12/keyhubcentral/internal/application/integration"
	"github.com/lithrlnd12/keyhubcentral/internal/application/usecase"
	"github.com/lithrlnd12/keyhubcentral/internal/application/webhook"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	DashboardUC  *analytics.DashboardUseCase
	ContractorUC *usecase.ContractorUseCase
	InvoiceUC    *billing.InvoiceUseCase
	VoiceWebhook *webhook.VoiceWebhookUseCase
	CalendarUC   *integration.CalendarUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Webhooks (público, autenticado por firma)
	webhookHandler := NewWebhookHandler(deps.VoiceWebhook)
	api.Post("/webhooks/voice", webhookHandler.Voice)

	// Callback OAuth (público, autenticado por state firmado)
	integrationHandler := NewIntegrationHandler(deps.CalendarUC)
	api.Get("/integrations/google-calendar/callback", integrationHandler.CalendarCallback)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequirePermission(policy.PermAccessDashboard), dashboardHandler.GetSummary)

	contractors := protected.Group("/contractors")
	contractorHandler := NewContractorHandler(deps.ContractorUC)
	contractors.Get("/", RequirePermission(policy.PermViewAllContractors), contractorHandler.List)
	contractors.Get("/:id", contractorHandler.GetByID)
	contractors.Patch("/:id/rating", RequireRole(entity.RoleOwner, entity.RoleAdmin), contractorHandler.UpdateRating)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", RequirePermission(policy.PermViewFinancials), invoiceHandler.Create)

	protected.Get("/integrations/google-calendar/connect", integrationHandler.ConnectCalendar)
}
