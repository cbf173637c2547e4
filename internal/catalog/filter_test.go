package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shambadirect/agrimarket/internal/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "c1", Name: "Maize", Category: catalog.CategoryCrops, Subcategory: "grain", Price: 1200, Unit: catalog.UnitKg, Location: "Morogoro", Description: "High-quality maize grains."},
		{ID: "c2", Name: "Rice", Category: catalog.CategoryCrops, Subcategory: "grain", Price: 2500, Unit: catalog.UnitKg, Location: "Mbeya", Description: "Premium rice from Mbeya."},
		{ID: "l1", Name: "Dairy Cattle", Category: catalog.CategoryLivestock, Subcategory: "cattle", Price: 750000, Unit: catalog.UnitHead, Location: "Arusha", Description: "Healthy dairy cattle."},
	}
}

func ptr[T any](v T) *T { return &v }

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name    string
		sel     catalog.Selection
		wantIDs []string
	}{
		{
			name:    "unconstrained selection returns everything",
			sel:     catalog.Selection{},
			wantIDs: []string{"c1", "c2", "l1"},
		},
		{
			name:    "category crops returns maize and rice in order",
			sel:     catalog.Selection{Category: ptr(catalog.CategoryCrops)},
			wantIDs: []string{"c1", "c2"},
		},
		{
			name:    "text matches name case-insensitively",
			sel:     catalog.Selection{Text: "maIZe"},
			wantIDs: []string{"c1"},
		},
		{
			name:    "text matches location",
			sel:     catalog.Selection{Text: "arusha"},
			wantIDs: []string{"l1"},
		},
		{
			name:    "text matches description",
			sel:     catalog.Selection{Text: "premium"},
			wantIDs: []string{"c2"},
		},
		{
			name:    "text OR group is ANDed with facets",
			sel:     catalog.Selection{Text: "mbeya", Category: ptr(catalog.CategoryLivestock)},
			wantIDs: []string{},
		},
		{
			name:    "subcategory narrows within category",
			sel:     catalog.Selection{Category: ptr(catalog.CategoryCrops), Subcategory: ptr("grain"), Location: ptr("Mbeya")},
			wantIDs: []string{"c2"},
		},
		{
			name:    "unit facet",
			sel:     catalog.Selection{Unit: ptr(catalog.UnitHead)},
			wantIDs: []string{"l1"},
		},
		{
			name:    "no match is an empty result, not an error",
			sel:     catalog.Selection{Text: "banana"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(products, tt.sel)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.wantIDs, ids(got)); diff != "" {
				t.Errorf("filter result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIsStableSubsequence(t *testing.T) {
	products := testProducts()
	got := catalog.Filter(products, catalog.Selection{Unit: ptr(catalog.UnitKg)})

	// Every result satisfies the constraint and keeps the input's relative order.
	pos := -1
	for _, p := range got {
		assert.Equal(t, catalog.UnitKg, p.Unit)
		idx := indexOf(products, p.ID)
		require.Greater(t, idx, pos)
		pos = idx
	}
}

func indexOf(products []catalog.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func TestFilterIdempotent(t *testing.T) {
	products := testProducts()
	sel := catalog.Selection{Text: "e", Category: ptr(catalog.CategoryCrops)}

	once := catalog.Filter(products, sel)
	twice := catalog.Filter(once, sel)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second application changed the result (-once +twice):\n%s", diff)
	}
}

func TestFilterIdentityWhenUnconstrained(t *testing.T) {
	products := testProducts()
	got := catalog.Filter(products, catalog.Selection{})
	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("unconstrained filter is not the identity (-want +got):\n%s", diff)
	}
}
