package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

type SortKey string

const (
	SortName       SortKey = "name"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
	SortPopularity SortKey = "popularity"
)

// CategoryAll selects every category.
const CategoryAll = "all"

// DefaultPriceMax is the upper bound of the price slider when no filter
// has been applied.
const DefaultPriceMax int64 = 20000

// Filters is the full filter/sort state of the catalog view.
type Filters struct {
	Query       string  `json:"searchQuery"`
	Category    string  `json:"selectedCategory"`
	PriceMax    int64   `json:"priceMax"`
	Sort        SortKey `json:"sortBy"`
	InStockOnly bool    `json:"inStock"`
	MinRating   float64 `json:"rating"`
	Brand       string  `json:"brand"`
}

func DefaultFilters() Filters {
	return Filters{Category: CategoryAll, PriceMax: DefaultPriceMax, Sort: SortName}
}

// DeriveView filters and sorts the catalog. It is pure: the input slice
// is never mutated and the result is freshly allocated. Predicates apply
// in a fixed order (search, category, price, stock, rating, brand) and
// the final sort is stable, so equal keys keep their prior relative
// order.
func DeriveView(catalog []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(catalog))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range catalog {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if p.Price < 0 || p.Price > f.PriceMax {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		(p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), query))
}

func sortProducts(ps []domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortName:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].ID > ps[j].ID })
	case SortPopularity:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Reviews > ps[j].Reviews })
	}
}

// ProductsSnapshot is an immutable view of the catalog state.
type ProductsSnapshot struct {
	Catalog    []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Filters    Filters           `json:"filters"`
	View       []domain.Product  `json:"filteredProducts"`
}

// Products owns the catalog, the current filter state, and the derived
// filtered+sorted view. Every filter setter re-derives the view in full.
type Products struct {
	mu         sync.Mutex
	catalog    []domain.Product
	categories []domain.Category
	filters    Filters
	view       []domain.Product
	signal
}

func NewProducts() *Products {
	return &Products{filters: DefaultFilters()}
}

// LoadCatalog replaces the catalog and category list and re-derives the
// view with whatever filters are already set. Filters applied before the
// data arrived take effect immediately.
func (s *Products) LoadCatalog(products []domain.Product, categories []domain.Category) {
	s.mu.Lock()
	s.catalog = append([]domain.Product(nil), products...)
	s.categories = append([]domain.Category(nil), categories...)
	s.view = DeriveView(s.catalog, s.filters)
	s.mu.Unlock()
	s.emit()
}

func (s *Products) SetSearchQuery(q string) {
	s.update(func(f *Filters) { f.Query = q })
}

func (s *Products) SetCategory(id string) {
	s.update(func(f *Filters) { f.Category = id })
}

func (s *Products) SetPriceMax(max int64) {
	s.update(func(f *Filters) { f.PriceMax = max })
}

func (s *Products) SetSortKey(key SortKey) {
	s.update(func(f *Filters) { f.Sort = key })
}

func (s *Products) SetStockOnly(on bool) {
	s.update(func(f *Filters) { f.InStockOnly = on })
}

func (s *Products) SetMinRating(r float64) {
	s.update(func(f *Filters) { f.MinRating = r })
}

func (s *Products) SetBrand(brand string) {
	s.update(func(f *Filters) { f.Brand = brand })
}

// ClearFilters resets every filter dimension in one step.
func (s *Products) ClearFilters() {
	s.update(func(f *Filters) { *f = DefaultFilters() })
}

// Get looks a product up by id in the full catalog, ignoring filters.
func (s *Products) Get(id int) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Products) Snapshot() ProductsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProductsSnapshot{
		Catalog:    append([]domain.Product(nil), s.catalog...),
		Categories: append([]domain.Category(nil), s.categories...),
		Filters:    s.filters,
		View:       append([]domain.Product(nil), s.view...),
	}
}

func (s *Products) update(mutate func(*Filters)) {
	s.mu.Lock()
	mutate(&s.filters)
	s.view = DeriveView(s.catalog, s.filters)
	s.mu.Unlock()
	s.emit()
}
