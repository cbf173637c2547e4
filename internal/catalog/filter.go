package catalog

import "strings"

// Selection is a transient facet query. A nil facet pointer means "no
// constraint" for that dimension; the zero value matches everything.
type Selection struct {
	Text        string
	Category    *Category
	Subcategory *string
	Location    *string
	Unit        *Unit
}

// Filter returns the products matching every active constraint of sel,
// preserving the relative order of the input. An empty result is a valid
// outcome and is returned as an empty, non-nil slice.
func Filter(products []Product, sel Selection) []Product {
	out := make([]Product, 0, len(products))
	text := strings.ToLower(strings.TrimSpace(sel.Text))
	for _, p := range products {
		if !matchesText(p, text) {
			continue
		}
		if sel.Category != nil && p.Category != *sel.Category {
			continue
		}
		if sel.Subcategory != nil && p.Subcategory != *sel.Subcategory {
			continue
		}
		if sel.Location != nil && p.Location != *sel.Location {
			continue
		}
		if sel.Unit != nil && p.Unit != *sel.Unit {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesText checks the case-insensitive substring match against name,
// description and location. The three fields are OR'd together.
func matchesText(p Product, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.Description), text) ||
		strings.Contains(strings.ToLower(p.Location), text)
}
