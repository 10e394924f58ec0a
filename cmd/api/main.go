// @title        Consulta CNPJ API
// @version      1.0
// @description  Consulta de CNPJ y quadro de sócios sobre la base pública de la Receita Federal.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consulta-cnpj/docs"
	"github.com/jhoicas/consulta-cnpj/internal/application/usecase"
	infrapdf "github.com/jhoicas/consulta-cnpj/internal/infrastructure/pdf"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/consulta-cnpj/internal/interfaces/http"
	"github.com/jhoicas/consulta-cnpj/pkg/config"
	"github.com/jhoicas/consulta-cnpj/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := log.WithContext(context.Background())
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	cnpjRepo := postgres.NewCNPJRepository(postgres.NewPoolSource(pool))
	cardGenerator := infrapdf.NewMarotoRegistrationCard()
	cnpjUC := usecase.NewCNPJUseCase(cnpjRepo, cardGenerator, cfg.Batch.MaxSize)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       docs.SwaggerInfo.Title,
	}))

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: la API queda abierta sin autenticación")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CNPJUC:    cnpjUC,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		Logger:    log.Zerolog(),
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
