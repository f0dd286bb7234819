package service

import (
	"errors"
	"testing"

	"github.com/stylehaven/storefront/internal/catalog"
	"github.com/stylehaven/storefront/internal/constants"
)

func TestCatalogServiceListProductsPipeline(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	items, total := svc.ListProducts(ProductListOptions{
		Category: "Electronics",
		Sort:     constants.SortPriceAsc,
		Page:     1,
		PageSize: 20,
	})
	if total != 2 {
		t.Fatalf("electronics total want 2 got %d", total)
	}
	if len(items) != 2 || items[0].ID != 4 || items[1].ID != 7 {
		t.Fatalf("electronics by price want [4 7] got %+v", items)
	}
}

func TestCatalogServiceListProductsPagination(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	first, total := svc.ListProducts(ProductListOptions{Sort: constants.SortPriceAsc, Page: 1, PageSize: 3})
	if total != 8 {
		t.Fatalf("total want 8 got %d", total)
	}
	if len(first) != 3 {
		t.Fatalf("page 1 want 3 items got %d", len(first))
	}
	last, _ := svc.ListProducts(ProductListOptions{Sort: constants.SortPriceAsc, Page: 3, PageSize: 3})
	if len(last) != 2 {
		t.Fatalf("page 3 want 2 items got %d", len(last))
	}
	beyond, _ := svc.ListProducts(ProductListOptions{Sort: constants.SortPriceAsc, Page: 4, PageSize: 3})
	if len(beyond) != 0 {
		t.Fatalf("page beyond range want 0 items got %d", len(beyond))
	}
}

func TestCatalogServiceListProductsFilterAndSearch(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	items, total := svc.ListProducts(ProductListOptions{
		Filter:   constants.FilterSale,
		Page:     1,
		PageSize: 20,
	})
	if total != 3 {
		t.Fatalf("sale total want 3 got %d", total)
	}
	for _, p := range items {
		if !p.Sale {
			t.Fatalf("non-sale product %d in sale filter", p.ID)
		}
	}

	items, total = svc.ListProducts(ProductListOptions{
		Search:   "tracker",
		Page:     1,
		PageSize: 20,
	})
	if total != 1 || items[0].ID != 7 {
		t.Fatalf("tracker search want product 7, got %+v", items)
	}
}

func TestCatalogServiceLookups(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	if _, err := svc.GetProduct(999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product want ErrProductNotFound got %v", err)
	}
	product, err := svc.GetProduct(3)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.OriginalPrice == nil {
		t.Fatalf("product 3 should carry original price")
	}

	if _, err := svc.GetCategoryBySlug("nope"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing category want ErrCategoryNotFound got %v", err)
	}
	category, err := svc.GetCategoryBySlug("home")
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if category.ID != 4 {
		t.Fatalf("home category want id 4 got %d", category.ID)
	}
	if got := svc.ListCategories(); len(got) != 4 {
		t.Fatalf("categories want 4 got %d", len(got))
	}
}
