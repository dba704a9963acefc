package catalog

import "sync"

// Repository provides read access to the product catalog.
type Repository interface {
	// Categories returns category names in display order.
	Categories() []string
	// Products returns the products of a category in catalog order.
	// ok is false when the category does not exist.
	Products(category string) (products []Product, ok bool)
}

// InMemoryRepository serves the catalog from process memory. The catalog is
// effectively a constant, so there is no write path.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []string
	storage    map[string][]Product
}

// NewInMemoryRepository builds a repository from the given seed. Categories
// keep the order of `categories`; names without seed entries are skipped.
func NewInMemoryRepository(categories []string, seed map[string][]Product) *InMemoryRepository {
	r := &InMemoryRepository{
		categories: make([]string, 0, len(categories)),
		storage:    make(map[string][]Product, len(seed)),
	}
	for _, name := range categories {
		products, ok := seed[name]
		if !ok {
			continue
		}
		r.categories = append(r.categories, name)
		cp := make([]Product, len(products))
		copy(cp, products)
		r.storage[name] = cp
	}
	return r
}

// NewDefaultRepository returns the fixed store catalog.
func NewDefaultRepository() *InMemoryRepository {
	return NewInMemoryRepository(Categories, defaultProducts)
}

func (r *InMemoryRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *InMemoryRepository) Products(category string) ([]Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products, ok := r.storage[category]
	if !ok {
		return nil, false
	}
	out := make([]Product, len(products))
	copy(out, products)
	return out, true
}
