package catalog

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"iphones-store/internal/logger"
)

// Sort modes for the home listing.
const (
	SortLatest    = "latest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListOptions are the home-page filter criteria. All filters are
// conjunctive; zero values mean "no filter".
type ListOptions struct {
	Search    string
	Model     string
	StorageGB int
	Sort      string
}

// ListResult carries the filtered listing plus the facets the filter
// selects are built from (facets always reflect the filtered set).
type ListResult struct {
	Products []Product
	Models   []string
	Storages []int
}

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input ProductInput) (string, error)
	Update(ctx context.Context, id int, input ProductInput) (string, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Warn("product list fetch failed", zap.Error(err))
		return nil, err
	}

	filtered := Filter(products, opts)
	SortProducts(filtered, opts.Sort)

	log.Debug("product list filtered",
		zap.Int("fetched", len(products)),
		zap.Int("returned", len(filtered)),
		zap.String("sort", opts.Sort),
	)

	return &ListResult{
		Products: filtered,
		Models:   uniqueModels(filtered),
		Storages: uniqueStorages(filtered),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input ProductInput) (string, error) {
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id int, input ProductInput) (string, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Filter applies the conjunctive listing filters and returns a fresh
// slice; the input keeps its fetch order.
func Filter(products []Product, opts ListOptions) []Product {
	term := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matchesSearch(&p, term) {
			continue
		}
		if opts.Model != "" && p.Modelo != opts.Model {
			continue
		}
		if opts.StorageGB != 0 && p.ArmazenamentoGB != opts.StorageGB {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p *Product, term string) bool {
	haystack := strings.ToLower(p.Nome + " " + p.Modelo + " " + p.DescricaoDetalhada)
	return strings.Contains(haystack, term)
}

// SortProducts orders in place: newest first by default, or by effective
// price. The sort is stable so ties keep their fetch order.
func SortProducts(products []Product, mode string) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DataCriacao.After(products[j].DataCriacao)
		})
	}
}

func uniqueModels(products []Product) []string {
	seen := make(map[string]bool)
	models := make([]string, 0)
	for _, p := range products {
		if p.Modelo != "" && !seen[p.Modelo] {
			seen[p.Modelo] = true
			models = append(models, p.Modelo)
		}
	}
	return models
}

func uniqueStorages(products []Product) []int {
	seen := make(map[int]bool)
	storages := make([]int, 0)
	for _, p := range products {
		if p.ArmazenamentoGB != 0 && !seen[p.ArmazenamentoGB] {
			seen[p.ArmazenamentoGB] = true
			storages = append(storages, p.ArmazenamentoGB)
		}
	}
	sort.Ints(storages)
	return storages
}
