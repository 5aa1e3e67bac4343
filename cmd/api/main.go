package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/msmepassport/msme-passport-api/internal/application/auth"
	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
	infraemail "github.com/msmepassport/msme-passport-api/internal/infrastructure/email"
	infrapdf "github.com/msmepassport/msme-passport-api/internal/infrastructure/pdf"
	"github.com/msmepassport/msme-passport-api/internal/infrastructure/postgres"
	infraqr "github.com/msmepassport/msme-passport-api/internal/infrastructure/qr"
	httpRouter "github.com/msmepassport/msme-passport-api/internal/interfaces/http"
	"github.com/msmepassport/msme-passport-api/pkg/config"
	"github.com/msmepassport/msme-passport-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	collabRepo := postgres.NewCollaborationRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	affiliateRepo := postgres.NewAffiliateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := infraemail.NewSMTPNotifier(cfg.SMTP, log)
	qrEncoder := infraqr.NewEncoder()
	cardGen := infrapdf.NewMarotoCardGenerator()

	authUC := auth.NewUseCase(userRepo, tokenRepo, notifier, log, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.EmailVerifyURL)
	userUC := usecase.NewUserUseCase(userRepo)
	businessUC := usecase.NewBusinessUseCase(businessRepo, userRepo, collabRepo, txRunner)
	adminUC := usecase.NewAdminUseCase(userRepo, businessRepo)
	passportUC := usecase.NewPassportUseCase(businessRepo, collabRepo, qrEncoder, cardGen, cfg.Passport.IssuerName)
	collabUC := usecase.NewCollaborationUseCase(collabRepo, businessRepo, userRepo)
	affiliateUC := usecase.NewAffiliateUseCase(affiliateRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	prometheus := fiberprometheus.New(cfg.App.Name)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MSME Passport API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		BusinessUC:  businessUC,
		AdminUC:     adminUC,
		PassportUC:  passportUC,
		CollabUC:    collabUC,
		AffiliateUC: affiliateUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
