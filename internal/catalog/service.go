package catalog

// Service provides read-only business logic for the catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListCategories returns category names in display order.
func (s *Service) ListCategories() []string {
	return s.repo.Categories()
}

// ListProducts returns the products of a category; ok is false for unknown
// categories.
func (s *Service) ListProducts(category string) ([]Product, bool) {
	return s.repo.Products(category)
}
