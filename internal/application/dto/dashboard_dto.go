package dto

import "time"

// DashboardStats compteurs globaux du tableau de bord.
type DashboardStats struct {
	TotalArticles        int `json:"total_articles"`
	TotalUsers           int `json:"total_users"`
	TotalDemandes        int `json:"total_demandes"`
	ArticlesLowStock     int `json:"articles_low_stock"`
	ArticlesExpiringSoon int `json:"articles_expiring_soon"`
}

// Types d'alerte.
const (
	AlerteStockLow     = "stock_low"
	AlerteExpiringSoon = "expiring_soon"
)

// AlerteItem une alerte par article concerné.
type AlerteItem struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// StockLevelItem niveau de stock brut pour le graphique (10 premiers par nom).
type StockLevelItem struct {
	Nom         string `json:"nom"`
	Quantite    int    `json:"quantite"`
	QuantiteMin int    `json:"quantite_min"`
}

// DashboardCharts données agrégées pour les graphiques.
type DashboardCharts struct {
	ArticlesByCategory map[string]int   `json:"articles_by_category"`
	DemandesByStatus   map[string]int   `json:"demandes_by_status"`
	StockLevels        []StockLevelItem `json:"stock_levels"`
}
