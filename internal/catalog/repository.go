package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Repository provides read access to the product catalog. Both methods are
// stateless reads; implementations must not hold mutable state between calls.
type Repository interface {
	List(q Query) ([]Product, error)
	FilterOptions() (FilterOptions, error)
}

// InMemoryRepository implements Repository over an in-process fixture. It is
// used by handler/service tests and for local development without Postgres.
// Purchase quantities are kept per product id, mirroring the order_items
// aggregation of the Postgres implementation.
type InMemoryRepository struct {
	mu        sync.RWMutex
	products  []Product
	purchases map[string]int
}

func NewInMemoryRepository(products []Product, purchases map[string]int) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(products, purchases)
	return r
}

// Reset replaces the whole fixture with the provided products and purchase
// quantities.
func (r *InMemoryRepository) Reset(products []Product, purchases map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make([]Product, len(products))
	copy(r.products, products)

	r.purchases = make(map[string]int, len(purchases))
	for id, qty := range purchases {
		r.purchases[id] = qty
	}
	return nil
}

func (r *InMemoryRepository) List(q Query) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if !matches(p, q) {
			continue
		}
		p.Tags = dedupTags(p.Tags)
		p.PurchaseCount = r.purchases[p.ID]
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out, nil
}

func (r *InMemoryRepository) FilterOptions() (FilterOptions, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := map[string]bool{}
	brands := map[string]bool{}
	for _, p := range r.products {
		categories[p.Category] = true
		brands[p.Brand] = true
	}
	return FilterOptions{
		Categories: sortedKeys(categories),
		Brands:     sortedKeys(brands),
	}, nil
}

// matches applies every present filter conjunctively. Empty slices and nil
// bounds impose no constraint; price bounds are inclusive.
func matches(p Product, q Query) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if len(q.Categories) > 0 && !containsString(q.Categories, p.Category) {
		return false
	}
	if len(q.Brands) > 0 && !containsString(q.Brands, p.Brand) {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	return true
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool { return products[i].PurchaseCount > products[j].PurchaseCount })
	}
}

func dedupTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
