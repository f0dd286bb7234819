package catalog

import (
	"testing"

	"github.com/stylehaven/storefront/internal/constants"
	"github.com/stylehaven/storefront/internal/models"
)

func TestByCategoryAllReturnsEverything(t *testing.T) {
	products := Default().Products()

	got := ByCategory(products, constants.CategoryAll)
	if len(got) != len(products) {
		t.Fatalf("all want %d got %d", len(products), len(got))
	}
	got = ByCategory(products, "")
	if len(got) != len(products) {
		t.Fatalf("empty category want %d got %d", len(products), len(got))
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	products := Default().Products()

	got := ByCategory(products, "electronics")
	if len(got) != 2 {
		t.Fatalf("electronics want 2 got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "Electronics" {
			t.Fatalf("unexpected category %s", p.Category)
		}
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	products := Default().Products()

	got := Search(products, "")
	if len(got) != len(products) {
		t.Fatalf("empty query want %d got %d", len(products), len(got))
	}
}

func TestSearchMatchesNameAndCategory(t *testing.T) {
	products := Default().Products()

	got := Search(products, "SWEATER")
	if len(got) != 1 || got[0].ID != 6 {
		t.Fatalf("sweater search want product 6, got %+v", got)
	}

	got = Search(products, "jewelry")
	if len(got) != 1 || got[0].ID != 8 {
		t.Fatalf("category term search want product 8, got %+v", got)
	}
}

func TestSortPriceAscDescAreReversals(t *testing.T) {
	products := Default().Products()

	asc := Sort(products, constants.SortPriceAsc)
	desc := Sort(products, constants.SortPriceDesc)
	if len(asc) != len(desc) {
		t.Fatalf("length mismatch %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("price orders should reverse each other at index %d: %d vs %d", i, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	}
	if asc[0].ID != 1 || asc[len(asc)-1].ID != 7 {
		t.Fatalf("price-asc endpoints want 1..7 got %d..%d", asc[0].ID, asc[len(asc)-1].ID)
	}
}

func TestSortNewestUsesCreatedAt(t *testing.T) {
	products := Default().Products()

	got := Sort(products, constants.SortNewest)
	if got[0].ID != 7 {
		t.Fatalf("newest first want product 7 got %d", got[0].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("created_at should be non-increasing at index %d", i)
		}
	}

	// 未知排序值回落到 newest
	fallback := Sort(products, "bogus")
	for i := range got {
		if fallback[i].ID != got[i].ID {
			t.Fatalf("unknown sort should fall back to newest at index %d", i)
		}
	}
}

func TestSortRatingDescending(t *testing.T) {
	got := Sort(Default().Products(), constants.SortRating)
	if got[0].ID != 3 {
		t.Fatalf("top rating want product 3 got %d", got[0].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Rating > got[i-1].Rating {
			t.Fatalf("rating should be non-increasing at index %d", i)
		}
	}
}

func TestSelectors(t *testing.T) {
	c := Default()

	if got := c.Featured(); len(got) != 4 {
		t.Fatalf("featured want 4 got %d", len(got))
	}
	if got := c.Trending(); len(got) != 3 {
		t.Fatalf("trending want 3 got %d", len(got))
	}
	if got := c.NewArrivals(); len(got) != 2 {
		t.Fatalf("new arrivals want 2 got %d", len(got))
	}
	if got := c.Sale(); len(got) != 3 {
		t.Fatalf("sale want 3 got %d", len(got))
	}
}

func TestFilterByTagUnknownReturnsAll(t *testing.T) {
	products := Default().Products()
	got := FilterByTag(products, "whatever")
	if len(got) != len(products) {
		t.Fatalf("unknown tag want %d got %d", len(products), len(got))
	}
}

func TestFilterByRange(t *testing.T) {
	products := Default().Products()

	min := models.NewMoneyFromString("50.00")
	max := models.NewMoneyFromString("100.00")
	got := FilterByRange(products, PriceRange{MinPrice: &min, MaxPrice: &max})
	want := map[uint]bool{2: true, 3: true, 6: true}
	if len(got) != len(want) {
		t.Fatalf("range filter want %d got %d", len(want), len(got))
	}
	for _, p := range got {
		if !want[p.ID] {
			t.Fatalf("unexpected product %d in range", p.ID)
		}
	}

	rating := 4.6
	got = FilterByRange(products, PriceRange{MinRating: &rating})
	if len(got) != 3 {
		t.Fatalf("min rating 4.6 want 3 got %d", len(got))
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	if p := c.ProductByID(1); p == nil || p.Name != "Classic White T-Shirt" {
		t.Fatalf("product 1 lookup failed: %+v", p)
	}
	if p := c.ProductByID(999); p != nil {
		t.Fatalf("missing product should be nil, got %+v", p)
	}
	if cat := c.CategoryBySlug("CLOTHING"); cat == nil || cat.ID != 1 {
		t.Fatalf("slug lookup should be case-insensitive, got %+v", cat)
	}
	if cat := c.CategoryBySlug("nope"); cat != nil {
		t.Fatalf("missing category should be nil, got %+v", cat)
	}
}
