package catalog

// Service provides the catalog's two read operations. The repository owns the
// query semantics; the service only delegates so handlers depend on a single
// type.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the products matching the query, denormalized with tags and
// purchase counts.
func (s *Service) List(q Query) ([]Product, error) {
	return s.repo.List(q)
}

// FilterOptions returns the distinct category/brand values for populating
// filter UI controls.
func (s *Service) FilterOptions() (FilterOptions, error) {
	return s.repo.FilterOptions()
}
