// Package analytics contient les cas d'usage read-only du tableau de bord:
// compteurs globaux, alertes et données de graphiques.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/stockify/stockify-api/internal/application/dto"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/textutil"
)

const (
	expiringWindowDays = 30  // fenêtre "expire bientôt": [maintenant, maintenant+30j]
	alertsMax          = 100 // alertes listées au maximum par type
	stockLevelsMax     = 10  // articles dans le graphique des niveaux de stock
)

// DashboardUseCase agrège l'état courant du système. Dérivé entièrement des
// données vivantes: rien n'est matérialisé.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// GetStats retourne les cinq compteurs du tableau de bord.
// Les cinq requêtes partent en parallèle.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := uc.now()
	horizon := now.AddDate(0, 0, expiringWindowDays)

	type countResult struct {
		n   int
		err error
	}
	run := func(fn func() (int, error)) chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := fn()
			ch <- countResult{n, err}
		}()
		return ch
	}

	articlesCh := run(func() (int, error) { return uc.repo.CountArticles(ctx) })
	usersCh := run(func() (int, error) { return uc.repo.CountUsers(ctx) })
	demandesCh := run(func() (int, error) { return uc.repo.CountDemandes(ctx) })
	lowStockCh := run(func() (int, error) { return uc.repo.CountLowStock(ctx) })
	expiringCh := run(func() (int, error) { return uc.repo.CountExpiringSoon(ctx, now, horizon) })

	stats := &dto.DashboardStats{}
	for _, pair := range []struct {
		ch   chan countResult
		dest *int
	}{
		{articlesCh, &stats.TotalArticles},
		{usersCh, &stats.TotalUsers},
		{demandesCh, &stats.TotalDemandes},
		{lowStockCh, &stats.ArticlesLowStock},
		{expiringCh, &stats.ArticlesExpiringSoon},
	} {
		res := <-pair.ch
		if res.err != nil {
			return nil, res.err
		}
		*pair.dest = res.n
	}
	return stats, nil
}

// GetAlerts retourne une alerte par article en stock faible et une par article
// expirant dans la fenêtre. Les jours restants sont la différence entière
// tronquée par rapport à maintenant.
func (uc *DashboardUseCase) GetAlerts(ctx context.Context) ([]dto.AlerteItem, error) {
	now := uc.now()
	horizon := now.AddDate(0, 0, expiringWindowDays)

	lowStock, err := uc.repo.ListLowStock(ctx, alertsMax)
	if err != nil {
		return nil, err
	}
	expiring, err := uc.repo.ListExpiringSoon(ctx, now, horizon, alertsMax)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.AlerteItem, 0, len(lowStock)+len(expiring))
	for _, a := range lowStock {
		alerts = append(alerts, dto.AlerteItem{
			ID:        a.ID,
			Nom:       a.Nom,
			Type:      dto.AlerteStockLow,
			Message:   fmt.Sprintf("Stock faible: %d restants (min: %d)", a.Quantite, a.QuantiteMin),
			CreatedAt: now,
		})
	}
	for _, a := range expiring {
		days := int(a.DateExpiration.Sub(now).Hours() / 24)
		alerts = append(alerts, dto.AlerteItem{
			ID:        a.ID,
			Nom:       a.Nom,
			Type:      dto.AlerteExpiringSoon,
			Message:   fmt.Sprintf("Expire dans %d jours", days),
			CreatedAt: now,
		})
	}
	return alerts, nil
}

// GetCharts retourne les trois agrégats de graphiques:
//   - articles par première lettre du nom (pliée, majuscule; "A" si nom vide);
//   - demandes par statut, les trois statuts toujours présents même à zéro;
//   - niveaux de stock bruts des 10 premiers articles triés par nom.
func (uc *DashboardUseCase) GetCharts(ctx context.Context) (*dto.DashboardCharts, error) {
	articles, err := uc.repo.ListArticlesByNom(ctx, 0)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string]int)
	for _, a := range articles {
		byCategory[textutil.FirstLetter(a.Nom)]++
	}

	byStatus, err := uc.repo.CountDemandesByStatut(ctx)
	if err != nil {
		return nil, err
	}
	// Buckets explicites à zéro pour les trois statuts
	for _, s := range []string{entity.DemandeStatusPending, entity.DemandeStatusApproved, entity.DemandeStatusRejected} {
		if _, ok := byStatus[s]; !ok {
			byStatus[s] = 0
		}
	}

	levels := make([]dto.StockLevelItem, 0, stockLevelsMax)
	for _, a := range articles {
		if len(levels) == stockLevelsMax {
			break
		}
		levels = append(levels, dto.StockLevelItem{
			Nom:         a.Nom,
			Quantite:    a.Quantite,
			QuantiteMin: a.QuantiteMin,
		})
	}

	return &dto.DashboardCharts{
		ArticlesByCategory: byCategory,
		DemandesByStatus:   byStatus,
		StockLevels:        levels,
	}, nil
}
