package recommendation

import (
	"fmt"
	"sort"

	"github.com/nattakit-w/shop-recommender-backend/internal/catalog"
)

// Service expands category recommendations into ranked product cards.
type Service struct {
	catalog catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{catalog: repo}
}

// Expand joins recommendations against the catalog. Every product of a
// matched category becomes one DisplayItem carrying the recommendation's
// confidence; recommendations for categories absent from the catalog are
// skipped, not errored. The result is sorted by confidence descending; the
// sort is stable so equal-confidence items keep catalog order.
func (s *Service) Expand(recs []CategoryRecommendation) []DisplayItem {
	items := make([]DisplayItem, 0)
	for _, rec := range recs {
		products, ok := s.catalog.Products(rec.Category)
		if !ok {
			continue
		}
		for _, p := range products {
			items = append(items, DisplayItem{
				Category:    rec.Category,
				ProductName: p.Name,
				Price:       p.Price,
				Reason:      fmt.Sprintf("%s - %s", rec.Reason, p.Description),
				Confidence:  rec.Confidence,
				Image:       p.Image,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Confidence > items[j].Confidence
	})
	return items
}
