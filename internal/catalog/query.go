// Package catalog derives the visible product list for the shop, category
// and wishlist views. It is a pure query layer: it never mutates the catalog
// and holds no state of its own.
package catalog

import (
	"sort"
	"strings"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
)

// AllFilter matches every category or series.
const AllFilter = "All"

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// SortKeyFromString maps both the query-string values and the shop UI labels
// onto a SortKey. Unknown input falls back to SortFeatured.
func SortKeyFromString(s string) SortKey {
	switch s {
	case string(SortPriceAsc), "Price: Low to High":
		return SortPriceAsc
	case string(SortPriceDesc), "Price: High to Low":
		return SortPriceDesc
	default:
		return SortFeatured
	}
}

// Criteria parameterizes a catalog query. Category and Series use AllFilter
// (or empty) to match everything; SearchText is matched case-insensitively
// against product name and series.
type Criteria struct {
	Category   string
	Series     string
	SearchText string
	Sort       SortKey
}

// matches applies the filter half of the query to a single product.
func (c Criteria) matches(p domain.Product) bool {
	if c.Category != "" && c.Category != AllFilter && string(p.Category) != c.Category {
		return false
	}
	if c.Series != "" && c.Series != AllFilter && p.Series != c.Series {
		return false
	}
	if c.SearchText != "" {
		q := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Series), q) {
			return false
		}
	}
	return true
}

// Visible filters and sorts the catalog for display. The result is a fresh
// slice; products is never reordered or mutated. SortFeatured preserves the
// input order, and the price sorts are stable so equal prices keep their
// relative order.
func Visible(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}
