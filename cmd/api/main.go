package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/lithrlnd12/keyhubcentral/docs"
	appanalytics "github.com/lithrlnd12/keyhubcentral/internal/application/analytics"
	"github.com/lithrlnd12/keyhubcentral/internal/application/auth"
	"github.com/lithrlnd12/keyhubcentral/internal/application/billing"
	"github.com/lithrlnd12/keyhubcentral/internal/application/integration"
	"github.com/lithrlnd12/keyhubcentral/internal/application/usecase"
	"github.com/lithrlnd12/keyhubcentral/internal/application/webhook"
	"github.com/lithrlnd12/keyhubcentral/internal/infrastructure/postgres"
	httpRouter "github.com/lithrlnd12/keyhubcentral/internal/interfaces/http"
	"github.com/lithrlnd12/keyhubcentral/pkg/config"
	"github.com/lithrlnd12/keyhubcentral/pkg/logger"
	"github.com/lithrlnd12/keyhubcentral/pkg/signature"
)

// @title                       KeyHub Central API
// @version                     1.0
// @description                 Autorización por rol, dashboard operativo, contratistas, facturas e integraciones.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	contractorRepo := postgres.NewContractorRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	callRepo := postgres.NewInboundCallRepository(pool)
	tokenRepo := postgres.NewIntegrationTokenRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(appanalytics.DashboardRepos{
		Campaigns:     postgres.NewCampaignRepository(pool),
		Leads:         postgres.NewLeadRepository(pool),
		Subscriptions: postgres.NewSubscriptionRepository(pool),
		Invoices:      invoiceRepo,
		Contractors:   contractorRepo,
		Calls:         callRepo,
		Payouts:       postgres.NewPayoutRepository(pool),
	})
	contractorUC := usecase.NewContractorUseCase(contractorRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)

	// Sin VOICE_WEBHOOK_SECRET se rechaza todo, salvo WEBHOOK_FAIL_OPEN (nunca en producción).
	policy := signature.FailClosed
	if cfg.Webhook.FailOpen {
		policy = signature.FailOpen
	}
	voiceVerifier := signature.NewVerifier("voice_webhook", cfg.Webhook.VoiceSecret, policy, log.Zerolog())
	if !voiceVerifier.Configured() {
		log.Warn().Bool("fail_open", cfg.Webhook.FailOpen).Msg("VOICE_WEBHOOK_SECRET no configurado")
	}
	voiceUC := webhook.NewVoiceWebhookUseCase(voiceVerifier, callRepo, log.Zerolog())

	calendarUC := integration.NewCalendarUseCase(integration.CalendarConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		StateSecret:  cfg.OAuth.StateSecret,
		StateTTL:     cfg.OAuth.StateTTL,
	}, tokenRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "KeyHub Central API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		ContractorUC: contractorUC,
		InvoiceUC:    invoiceUC,
		VoiceWebhook: voiceUC,
		CalendarUC:   calendarUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
