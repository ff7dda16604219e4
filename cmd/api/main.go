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

	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-industrial/internal/interfaces/http"
	"github.com/jhoicas/catalogo-industrial/pkg/config"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// Margen sobre el límite de archivo para los demás campos del multipart.
const multipartOverhead = 64 * 1024

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
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := usecase.NewCatalogUseCase()
	productUC := usecase.NewProductUseCase(productRepo)
	seedUC := appcatalog.NewSeedUseCase(txRunner, log)
	importUC := appcatalog.NewImportUseCase(txRunner, log)
	migrationUC := appcatalog.NewMigrationUseCase(txRunner, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxUploadBytes() + multipartOverhead,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Industrial API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		ProductUC:   productUC,
		SeedUC:      seedUC,
		ImportUC:    importUC,
		MigrationUC: migrationUC,
		Import: httpRouter.ImportConfig{
			MaxUploadBytes:  cfg.Import.MaxUploadBytes(),
			CSVEncoding:     cfg.Import.CSVEncoding,
			DefaultSupplier: cfg.Import.DefaultSupplier,
			Sheet:           cfg.Import.Sheet,
		},
		JWTSecret: cfg.JWT.Secret,
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
