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

	_ "github.com/jhoicas/Mandatos-api/docs"
	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
	infradocx "github.com/jhoicas/Mandatos-api/internal/infrastructure/docx"
	infrapdf "github.com/jhoicas/Mandatos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mandatos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Mandatos-api/internal/interfaces/http"
	"github.com/jhoicas/Mandatos-api/pkg/config"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

// @title                       Mandatos API
// @version                     1.0
// @description                 Expedientes de propiedades y mandatos de venta (DOCX / PDF).
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("template", cfg.Docs.MandateTemplate).
		Msg("iniciando aplicación")

	if _, err := os.Stat(cfg.Docs.MandateTemplate); err != nil {
		// No es fatal: el PDF sigue disponible y el DOCX responde TEMPLATE_MISSING.
		log.Warn().Err(err).Str("path", cfg.Docs.MandateTemplate).Msg("plantilla de mandato no disponible")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	propertyRepo := postgres.NewPropertyRepository(pool)
	mandateRepo := postgres.NewMandateRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	propertyUC := usecase.NewPropertyUseCase(propertyRepo, userRepo, log)
	mandateUC := usecase.NewMandateUseCase(txRunner, propertyRepo, mandateRepo, log)
	userUC := usecase.NewUserUseCase(userRepo)

	docxRenderer := infradocx.NewTemplateRenderer(cfg.Docs.MandateTemplate)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Agency)
	documentUC := documents.NewMandateDocumentUseCase(propertyRepo, mandateRepo, docxRenderer, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    "Mandatos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PropertyUC: propertyUC,
		MandateUC:  mandateUC,
		DocumentUC: documentUC,
		UserUC:     userUC,
		Logger:     log,
		JWTSecret:  cfg.JWT.Secret,
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
