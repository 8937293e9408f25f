package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stockify/stockify-api/internal/application/analytics"
	"github.com/stockify/stockify-api/internal/application/article"
	"github.com/stockify/stockify-api/internal/application/auth"
	"github.com/stockify/stockify-api/internal/application/demande"
	"github.com/stockify/stockify-api/internal/application/historique"
	"github.com/stockify/stockify-api/internal/application/mouvement"
	"github.com/stockify/stockify-api/internal/infrastructure/postgres"
	httpRouter "github.com/stockify/stockify-api/internal/interfaces/http"
	"github.com/stockify/stockify-api/pkg/config"
	"github.com/stockify/stockify-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("créer le répertoire d'upload")
	}

	userRepo := postgres.NewUserRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	demandeRepo := postgres.NewDemandeRepository(pool)
	mouvementRepo := postgres.NewMouvementRepository(pool)
	historiqueRepo := postgres.NewHistoriqueRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	articleUC := article.NewArticleUseCase(articleRepo, historiqueRepo)
	demandeUC := demande.NewDemandeUseCase(txRunner, demandeRepo, articleRepo, userRepo, historiqueRepo)
	mouvementUC := mouvement.NewMouvementUseCase(txRunner, mouvementRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	historiqueUC := historique.NewHistoriqueUseCase(historiqueRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockify API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Images d'articles
	app.Static("/uploads", cfg.Upload.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ArticleUC:    articleUC,
		DemandeUC:    demandeUC,
		MouvementUC:  mouvementUC,
		DashboardUC:  dashboardUC,
		HistoriqueUC: historiqueUC,
		JWTSecret:    cfg.JWT.Secret,
		UploadDir:    cfg.Upload.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
