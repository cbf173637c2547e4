package catalog

// FacetOptions lists the facet values present among one category's products,
// each in first-seen order. The core exposes raw values only; presentation
// code prepends its own localized "all" entry.
type FacetOptions struct {
	Subcategories []string `json:"subcategories"`
	Locations     []string `json:"locations"`
	Units         []Unit   `json:"units"`
}

// Index is the read-only catalog shared by all components. Grouping by
// category and facet-option derivation happen once at load time.
type Index struct {
	products   []Product
	byID       map[string]Product
	byCategory map[Category][]Product
	facets     map[Category]FacetOptions
}

// NewIndex builds an Index from the loaded product set, preserving the
// source order.
func NewIndex(products []Product) *Index {
	idx := &Index{
		products:   make([]Product, len(products)),
		byID:       make(map[string]Product, len(products)),
		byCategory: make(map[Category][]Product),
		facets:     make(map[Category]FacetOptions),
	}
	copy(idx.products, products)

	for _, p := range idx.products {
		idx.byID[p.ID] = p
		idx.byCategory[p.Category] = append(idx.byCategory[p.Category], p)
	}

	for cat, group := range idx.byCategory {
		var opts FacetOptions
		seenSub := make(map[string]bool)
		seenLoc := make(map[string]bool)
		seenUnit := make(map[Unit]bool)
		for _, p := range group {
			if !seenSub[p.Subcategory] {
				seenSub[p.Subcategory] = true
				opts.Subcategories = append(opts.Subcategories, p.Subcategory)
			}
			if !seenLoc[p.Location] {
				seenLoc[p.Location] = true
				opts.Locations = append(opts.Locations, p.Location)
			}
			if !seenUnit[p.Unit] {
				seenUnit[p.Unit] = true
				opts.Units = append(opts.Units, p.Unit)
			}
		}
		idx.facets[cat] = opts
	}

	return idx
}

// All returns every product in insertion order.
func (idx *Index) All() []Product {
	out := make([]Product, len(idx.products))
	copy(out, idx.products)
	return out
}

// ByCategory returns the products of one category in insertion order.
// An unknown or empty category yields an empty slice, not an error.
func (idx *Index) ByCategory(cat Category) []Product {
	group := idx.byCategory[cat]
	out := make([]Product, len(group))
	copy(out, group)
	return out
}

// Facets returns the facet values available for narrowing within a category.
func (idx *Index) Facets(cat Category) FacetOptions {
	return idx.facets[cat]
}

// Get looks up a product by id.
func (idx *Index) Get(id string) (Product, bool) {
	p, ok := idx.byID[id]
	return p, ok
}

// Len returns the number of listed products.
func (idx *Index) Len() int {
	return len(idx.products)
}
