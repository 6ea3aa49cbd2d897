package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/packages-api/internal/application/usecase"
	"github.com/jhoicas/packages-api/internal/infrastructure/mongodb"
	apigraphql "github.com/jhoicas/packages-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/packages-api/internal/interfaces/http"
	"github.com/jhoicas/packages-api/pkg/config"
	"github.com/jhoicas/packages-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()
	client, db, err := mongodb.Connect(connectCtx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("base de datos conectada")

	if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	packageRepo := mongodb.NewPackageRepository(db)

	jwtCfg := usecase.JWTConfig{Secret: cfg.JWT.Secret, ExpDays: cfg.JWT.ExpDays}
	resolver := apigraphql.NewResolver(
		usecase.NewUserUseCase(userRepo, jwtCfg),
		usecase.NewAdminUseCase(adminRepo, userRepo, jwtCfg),
		usecase.NewPackageUseCase(packageRepo),
	)
	schema, err := apigraphql.NewSchema(resolver)
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del schema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:    schema,
		JWTSecret: cfg.JWT.Secret,
		Users:     userRepo,
		Admins:    adminRepo,
		GraphiQL:  cfg.App.IsDevelopment(),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.HTTP.Addr())
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		os.Exit(1)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("señal de apagado recibida, cerrando servidor...")
	}

	// si el apagado ordenado se cuelga, salimos igual
	time.AfterFunc(15*time.Second, func() {
		log.Error().Msg("apagado forzado por timeout")
		os.Exit(1)
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desconexión de MongoDB")
	}

	log.Info().Msg("aplicación detenida")
}
