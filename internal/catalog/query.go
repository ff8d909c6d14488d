package catalog

import (
	"sort"
	"strings"

	"github.com/tradwear/storefront/internal/domain"
)

// FilterAll disables a category or region filter.
const FilterAll = "all"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortMostLoved SortKey = "most-loved"
)

// Criteria is one shop-page query: free-text search, category and region
// filters, and a sort order. Filters are conjunctive.
type Criteria struct {
	Search   string
	Category string
	Region   string
	Sort     SortKey
}

func DefaultCriteria() Criteria {
	return Criteria{Category: FilterAll, Region: FilterAll, Sort: SortNewest}
}

// Reset restores the defaults. Backs the "no products found" clear-filters
// control.
func (c *Criteria) Reset() {
	*c = DefaultCriteria()
}

func (c Criteria) matches(p domain.Product) bool {
	if c.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && c.Category != FilterAll && string(p.Category) != c.Category {
		return false
	}
	if c.Region != "" && c.Region != FilterAll && string(p.Region) != c.Region {
		return false
	}
	return true
}

// Apply filters and sorts products. The input slice is never modified; ties
// under every sort key keep their input order.
func (c Criteria) Apply(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch c.Sort {
		case SortPriceLow:
			return a.Price.Amount.LessThan(b.Price.Amount)
		case SortPriceHigh:
			return a.Price.Amount.GreaterThan(b.Price.Amount)
		case SortMostLoved:
			return a.IsFavorite && !b.IsFavorite
		default: // SortNewest
			return a.IsNew && !b.IsNew
		}
	})

	return result
}
