package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockify/stockify-api/internal/application/analytics"
	"github.com/stockify/stockify-api/internal/application/article"
	"github.com/stockify/stockify-api/internal/application/auth"
	"github.com/stockify/stockify-api/internal/application/demande"
	"github.com/stockify/stockify-api/internal/application/historique"
	"github.com/stockify/stockify-api/internal/application/mouvement"
	"github.com/stockify/stockify-api/internal/domain/entity"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ArticleUC    *article.ArticleUseCase
	DemandeUC    *demande.DemandeUseCase
	MouvementUC  *mouvement.MouvementUseCase
	DashboardUC  *analytics.DashboardUseCase
	HistoriqueUC *historique.HistoriqueUseCase
	JWTSecret    string
	UploadDir    string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Articles (lecture pour tous, écriture admin)
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.UploadDir)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Post("/", admin, articleHandler.Create)
	articles.Put("/:id", admin, articleHandler.Update)
	articles.Delete("/:id", admin, articleHandler.Delete)

	// Demandes (création et listing pour tous, décision admin)
	demandes := protected.Group("/demandes")
	demandeHandler := NewDemandeHandler(deps.DemandeUC)
	demandes.Post("/", demandeHandler.Create)
	demandes.Get("/", demandeHandler.List)
	demandes.Put("/:id/approve", admin, demandeHandler.Approve)
	demandes.Put("/:id/reject", admin, demandeHandler.Reject)

	// Mouvements (admin)
	mouvements := protected.Group("/mouvements", admin)
	mouvementHandler := NewMouvementHandler(deps.MouvementUC)
	mouvements.Post("/", mouvementHandler.Create)
	mouvements.Get("/", mouvementHandler.List)

	// Dashboard (protégé)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/alerts", dashboardHandler.Alerts)
	dashboard.Get("/charts", dashboardHandler.Charts)

	// Historique (protégé, filtré par rôle dans le use case)
	historiqueHandler := NewHistoriqueHandler(deps.HistoriqueUC)
	protected.Get("/historique", historiqueHandler.List)
}
