package recommendation

import (
	"reflect"
	"testing"

	"github.com/nattakit-w/shop-recommender-backend/internal/catalog"
)

func newTestService() *Service {
	return NewService(catalog.NewDefaultRepository())
}

func TestExpand_SingleCategory(t *testing.T) {
	s := newTestService()

	items := s.Expand([]CategoryRecommendation{
		{Category: "Cooking", Reason: "r1", Confidence: 0.9},
	})

	if len(items) != 3 {
		t.Fatalf("expected 3 items (one per Cooking product), got %d", len(items))
	}

	// catalog order is preserved within the category
	wantNames := []string{"Instant Pot Duo", "Vitamix Blender", "Kitchen Scale Digital"}
	for i, item := range items {
		if item.ProductName != wantNames[i] {
			t.Fatalf("item %d: expected %q, got %q", i, wantNames[i], item.ProductName)
		}
		if item.Confidence != 0.9 {
			t.Fatalf("item %d: expected confidence 0.9, got %v", i, item.Confidence)
		}
		if item.Category != "Cooking" {
			t.Fatalf("item %d: unexpected category %q", i, item.Category)
		}
	}

	if items[0].Reason != "r1 - หม้อทำอาหารอเนกประสงค์" {
		t.Fatalf("unexpected composed reason %q", items[0].Reason)
	}
	if items[0].Price != 3900 {
		t.Fatalf("unexpected price %d", items[0].Price)
	}
}

func TestExpand_UnknownCategoryIsSkipped(t *testing.T) {
	s := newTestService()

	items := s.Expand([]CategoryRecommendation{
		{Category: "Gardening", Reason: "r1", Confidence: 0.9},
	})
	if len(items) != 0 {
		t.Fatalf("expected no items for an unknown category, got %d", len(items))
	}
}

func TestExpand_SortsByConfidenceDescending(t *testing.T) {
	s := newTestService()

	items := s.Expand([]CategoryRecommendation{
		{Category: "Cooking", Reason: "r1", Confidence: 0.9},
		{Category: "Sports & Fitness", Reason: "r2", Confidence: 0.95},
	})

	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	for i := 0; i < 3; i++ {
		if items[i].Category != "Sports & Fitness" {
			t.Fatalf("item %d: expected Sports & Fitness first, got %q", i, items[i].Category)
		}
	}
	for i := 3; i < 6; i++ {
		if items[i].Category != "Cooking" {
			t.Fatalf("item %d: expected Cooking last, got %q", i, items[i].Category)
		}
	}
}

func TestExpand_EqualConfidenceKeepsInputOrder(t *testing.T) {
	s := newTestService()

	items := s.Expand([]CategoryRecommendation{
		{Category: "Photography", Reason: "r1", Confidence: 0.8},
		{Category: "Cooking", Reason: "r2", Confidence: 0.8},
	})

	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	if items[0].Category != "Photography" || items[5].Category != "Cooking" {
		t.Fatalf("stable sort must keep prior relative order, got %q ... %q", items[0].Category, items[5].Category)
	}
}

func TestExpand_EmptyInput(t *testing.T) {
	s := newTestService()

	items := s.Expand(nil)
	if items == nil {
		t.Fatal("expected an empty list, not nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestExpand_Idempotent(t *testing.T) {
	s := newTestService()
	recs := []CategoryRecommendation{
		{Category: "Sports & Fitness", Reason: "r1", Confidence: 0.7},
		{Category: "Photography", Reason: "r2", Confidence: 0.7},
		{Category: "Cooking", Reason: "r3", Confidence: 0.4},
	}

	first := s.Expand(recs)
	second := s.Expand(recs)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical input")
	}
}
