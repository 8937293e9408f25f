// Package memstore fournit des implémentations en mémoire des ports de
// persistance, pour tester les cas d'usage sans PostgreSQL. Les sémantiques
// reproduisent celles des repositories SQL: lectures (nil, nil) si absent,
// mises à jour conditionnelles atomiques, totaux calculés après filtrage.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stockify/stockify-api/internal/domain"
	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/textutil"
)

// Store état partagé par tous les repositories en mémoire.
type Store struct {
	mu         sync.Mutex
	users      map[string]*entity.User
	articles   map[string]*entity.Article
	demandes   map[string]*entity.Demande
	mouvements []*entity.Mouvement
	historique []*entity.HistoriqueAction
}

// New crée un Store vide.
func New() *Store {
	return &Store{
		users:    map[string]*entity.User{},
		articles: map[string]*entity.Article{},
		demandes: map[string]*entity.Demande{},
	}
}

// Users retourne le repository utilisateurs lié au store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Articles retourne le repository articles lié au store.
func (s *Store) Articles() repository.ArticleRepository { return &articleRepo{s} }

// Demandes retourne le repository demandes lié au store.
func (s *Store) Demandes() repository.DemandeRepository { return &demandeRepo{s} }

// Mouvements retourne le repository mouvements lié au store.
func (s *Store) Mouvements() repository.MouvementRepository { return &mouvementRepo{s} }

// Historique retourne le repository historique lié au store.
func (s *Store) Historique() repository.HistoriqueRepository { return &historiqueRepo{s} }

// Dashboard retourne le repository d'agrégation lié au store.
func (s *Store) Dashboard() repository.DashboardRepository { return &dashboardRepo{s} }

// SeedUser insère un utilisateur directement.
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *u
	s.users[u.ID] = &c
}

// SeedArticle insère un article directement.
func (s *Store) SeedArticle(a *entity.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *a
	s.articles[a.ID] = &c
}

// SeedDemande insère une demande directement.
func (s *Store) SeedDemande(d *entity.Demande) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *d
	s.demandes[d.ID] = &c
}

// ArticleQuantite retourne la quantité courante d'un article (-1 si absent).
func (s *Store) ArticleQuantite(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return -1
	}
	return a.Quantite
}

// DemandeStatut retourne le statut courant d'une demande ("" si absente).
func (s *Store) DemandeStatut(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.demandes[id]
	if !ok {
		return ""
	}
	return d.Statut
}

// MouvementsList retourne une copie du grand-livre.
func (s *Store) MouvementsList() []*entity.Mouvement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Mouvement, 0, len(s.mouvements))
	for _, m := range s.mouvements {
		c := *m
		out = append(out, &c)
	}
	return out
}

// HistoriqueList retourne une copie du journal d'audit.
func (s *Store) HistoriqueList() []*entity.HistoriqueAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.HistoriqueAction, 0, len(s.historique))
	for _, h := range s.historique {
		c := *h
		out = append(out, &c)
	}
	return out
}

// snapshot copie profonde de l'état, pour le rollback du TxRunner.
func (s *Store) snapshot() *Store {
	snap := New()
	for id, u := range s.users {
		c := *u
		snap.users[id] = &c
	}
	for id, a := range s.articles {
		c := *a
		snap.articles[id] = &c
	}
	for id, d := range s.demandes {
		c := *d
		snap.demandes[id] = &c
	}
	for _, m := range s.mouvements {
		c := *m
		snap.mouvements = append(snap.mouvements, &c)
	}
	for _, h := range s.historique {
		c := *h
		snap.historique = append(snap.historique, &c)
	}
	return snap
}

func (s *Store) restore(snap *Store) {
	s.users = snap.users
	s.articles = snap.articles
	s.demandes = snap.demandes
	s.mouvements = snap.mouvements
	s.historique = snap.historique
}

// TxRunner exécute la fonction sur le store et restaure l'état d'avant en cas
// d'erreur, reproduisant le rollback d'une transaction SQL.
type TxRunner struct {
	S *Store
}

// Run implémente le port du workflow de demandes.
func (t *TxRunner) Run(ctx context.Context, fn func(
	demandes repository.DemandeRepository,
	articles repository.ArticleRepository,
	mouvements repository.MouvementRepository,
	historique repository.HistoriqueRepository,
) error) error {
	t.S.mu.Lock()
	snap := t.S.snapshot()
	t.S.mu.Unlock()
	if err := fn(t.S.Demandes(), t.S.Articles(), t.S.Mouvements(), t.S.Historique()); err != nil {
		t.S.mu.Lock()
		t.S.restore(snap)
		t.S.mu.Unlock()
		return err
	}
	return nil
}

// RunMouvement implémente le port des mouvements manuels.
func (t *TxRunner) RunMouvement(ctx context.Context, fn func(
	articles repository.ArticleRepository,
	mouvements repository.MouvementRepository,
	historique repository.HistoriqueRepository,
) error) error {
	t.S.mu.Lock()
	snap := t.S.snapshot()
	t.S.mu.Unlock()
	if err := fn(t.S.Articles(), t.S.Mouvements(), t.S.Historique()); err != nil {
		t.S.mu.Lock()
		t.S.restore(snap)
		t.S.mu.Unlock()
		return err
	}
	return nil
}

// ── users ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	c := *user
	r.s.users[user.ID] = &c
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// ── articles ─────────────────────────────────────────────────────────────────

type articleRepo struct{ s *Store }

var _ repository.ArticleRepository = (*articleRepo)(nil)

func (r *articleRepo) Create(_ context.Context, article *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *article
	r.s.articles[article.ID] = &c
	return nil
}

func (r *articleRepo) GetByID(_ context.Context, id string) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *articleRepo) Update(_ context.Context, article *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[article.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *article
	r.s.articles[article.ID] = &c
	return nil
}

func (r *articleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.articles, id)
	return nil
}

func (r *articleRepo) List(_ context.Context, filter repository.ArticleFilter) ([]*entity.Article, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(textutil.Fold(filter.Search))
	matched := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		if filter.LowStock && !a.LowStock() {
			continue
		}
		if needle != "" {
			hay := strings.ToLower(textutil.Fold(a.Nom + " " + a.Description))
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		c := *a
		matched = append(matched, &c)
	}
	total := len(matched)

	asc := filter.SortOrder == "asc"
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "nom":
			less = matched[i].Nom < matched[j].Nom
		case "quantite":
			less = matched[i].Quantite < matched[j].Quantite
		case "quantite_min":
			less = matched[i].QuantiteMin < matched[j].QuantiteMin
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return paginate(matched, filter.Offset, filter.Limit), total, nil
}

func (r *articleRepo) AjusterQuantite(_ context.Context, id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Quantite += delta
	a.UpdatedAt = time.Now()
	return nil
}

func (r *articleRepo) DecrementerQuantite(_ context.Context, id string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.Quantite < qty {
		return domain.ErrInsufficientStock
	}
	a.Quantite -= qty
	a.UpdatedAt = time.Now()
	return nil
}

// ── demandes ─────────────────────────────────────────────────────────────────

type demandeRepo struct{ s *Store }

var _ repository.DemandeRepository = (*demandeRepo)(nil)

func (r *demandeRepo) Create(_ context.Context, demande *entity.Demande) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *demande
	r.s.demandes[demande.ID] = &c
	return nil
}

func (r *demandeRepo) GetByID(_ context.Context, id string) (*entity.Demande, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.demandes[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *demandeRepo) List(_ context.Context, filter repository.DemandeFilter) ([]*repository.DemandeRow, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(textutil.Fold(filter.Search))
	matched := make([]*repository.DemandeRow, 0, len(r.s.demandes))
	for _, d := range r.s.demandes {
		if filter.UserID != "" && d.UserID != filter.UserID {
			continue
		}
		if filter.Statut != "" && d.Statut != filter.Statut {
			continue
		}
		row := &repository.DemandeRow{Demande: *d}
		if u, ok := r.s.users[d.UserID]; ok {
			nom := u.Nom
			row.UserNom = &nom
		}
		if a, ok := r.s.articles[d.ArticleID]; ok {
			nom := a.Nom
			row.ArticleNom = &nom
		}
		if needle != "" {
			hay := ""
			if row.UserNom != nil {
				hay += *row.UserNom + " "
			}
			if row.ArticleNom != nil {
				hay += *row.ArticleNom
			}
			if !strings.Contains(strings.ToLower(textutil.Fold(hay)), needle) {
				continue
			}
		}
		matched = append(matched, row)
	}
	total := len(matched)

	asc := filter.SortOrder == "asc"
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "statut":
			less = matched[i].Statut < matched[j].Statut
		case "quantite_demandee":
			less = matched[i].QuantiteDemandee < matched[j].QuantiteDemandee
		default:
			less = matched[i].DateDemande.Before(matched[j].DateDemande)
		}
		if asc {
			return less
		}
		return !less
	})

	return paginate(matched, filter.Offset, filter.Limit), total, nil
}

func (r *demandeRepo) UpdateStatutIfPending(_ context.Context, id, statut string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.demandes[id]
	if !ok || d.Statut != entity.DemandeStatusPending {
		return false, nil
	}
	d.Statut = statut
	d.UpdatedAt = time.Now()
	return true, nil
}

// ── mouvements ───────────────────────────────────────────────────────────────

type mouvementRepo struct{ s *Store }

var _ repository.MouvementRepository = (*mouvementRepo)(nil)

func (r *mouvementRepo) Create(_ context.Context, mouvement *entity.Mouvement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *mouvement
	r.s.mouvements = append(r.s.mouvements, &c)
	return nil
}

func (r *mouvementRepo) List(_ context.Context, filter repository.MouvementFilter) ([]*repository.MouvementRow, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(textutil.Fold(filter.Search))
	matched := make([]*repository.MouvementRow, 0, len(r.s.mouvements))
	for _, m := range r.s.mouvements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		row := &repository.MouvementRow{Mouvement: *m}
		if a, ok := r.s.articles[m.ArticleID]; ok {
			nom := a.Nom
			row.ArticleNom = &nom
		}
		if u, ok := r.s.users[m.UtilisateurID]; ok {
			nom := u.Nom
			row.UserNom = &nom
		}
		if needle != "" {
			hay := m.Raison + " "
			if row.ArticleNom != nil {
				hay += *row.ArticleNom + " "
			}
			if row.UserNom != nil {
				hay += *row.UserNom
			}
			if !strings.Contains(strings.ToLower(textutil.Fold(hay)), needle) {
				continue
			}
		}
		matched = append(matched, row)
	}
	total := len(matched)

	asc := filter.SortOrder == "asc"
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "quantite":
			less = matched[i].Quantite < matched[j].Quantite
		case "type":
			less = matched[i].Type < matched[j].Type
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return paginate(matched, filter.Offset, filter.Limit), total, nil
}

// ── historique ───────────────────────────────────────────────────────────────

type historiqueRepo struct{ s *Store }

var _ repository.HistoriqueRepository = (*historiqueRepo)(nil)

func (r *historiqueRepo) Create(_ context.Context, action *entity.HistoriqueAction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *action
	r.s.historique = append(r.s.historique, &c)
	return nil
}

func (r *historiqueRepo) List(_ context.Context, userID string, limit int) ([]*repository.HistoriqueRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := make([]*repository.HistoriqueRow, 0, len(r.s.historique))
	for _, h := range r.s.historique {
		if userID != "" && h.UserID != userID {
			continue
		}
		row := &repository.HistoriqueRow{HistoriqueAction: *h}
		if u, ok := r.s.users[h.UserID]; ok {
			nom := u.Nom
			row.UserNom = &nom
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── dashboard ────────────────────────────────────────────────────────────────

type dashboardRepo struct{ s *Store }

var _ repository.DashboardRepository = (*dashboardRepo)(nil)

func (r *dashboardRepo) CountArticles(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.articles), nil
}

func (r *dashboardRepo) CountUsers(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.users), nil
}

func (r *dashboardRepo) CountDemandes(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.demandes), nil
}

func (r *dashboardRepo) CountLowStock(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.articles {
		if a.LowStock() {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepo) CountExpiringSoon(_ context.Context, from, to time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.articles {
		if expiresIn(a, from, to) {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepo) ListLowStock(_ context.Context, limit int) ([]*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Article, 0)
	for _, a := range r.s.articles {
		if a.LowStock() {
			c := *a
			out = append(out, &c)
		}
	}
	sortByNom(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) ListExpiringSoon(_ context.Context, from, to time.Time, limit int) ([]*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Article, 0)
	for _, a := range r.s.articles {
		if expiresIn(a, from, to) {
			c := *a
			out = append(out, &c)
		}
	}
	sortByNom(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) ListArticlesByNom(_ context.Context, limit int) ([]*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		c := *a
		out = append(out, &c)
	}
	sortByNom(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) CountDemandesByStatut(_ context.Context) (map[string]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]int{}
	for _, d := range r.s.demandes {
		counts[d.Statut]++
	}
	return counts, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func expiresIn(a *entity.Article, from, to time.Time) bool {
	if a.DateExpiration == nil {
		return false
	}
	d := *a.DateExpiration
	return !d.Before(from) && !d.After(to)
}

func sortByNom(articles []*entity.Article) {
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Nom < articles[j].Nom
	})
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
