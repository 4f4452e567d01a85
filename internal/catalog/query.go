package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// Pure transformations over a product slice. Filters never mutate
// their input and are AND-composable by chaining.

func ByCategory(products []*model.Product, category string) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Category == category
	})
}

func ByVoltage(products []*model.Product, voltage int) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Specifications.Voltage == voltage
	})
}

func ByTechnology(products []*model.Product, technology string) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Technology == technology
	})
}

func BySeries(products []*model.Product, series string) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool {
		return p.Series == series
	})
}

// ByPriceRange keeps products whose parsed price lies in [min, max].
// Products priced on request have no numeric price and are excluded.
func ByPriceRange(products []*model.Product, min, max float64) []*model.Product {
	return lo.Filter(products, func(p *model.Product, _ int) bool {
		price, ok := p.PriceValue()
		return ok && price >= min && price <= max
	})
}

// Search matches the query case-insensitively against name, category,
// technology, series and focus keywords. An empty or whitespace query
// returns the input unchanged.
func Search(products []*model.Product, query string) []*model.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products
	}

	return lo.Filter(products, func(p *model.Product, _ int) bool {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Technology), term) ||
			strings.Contains(strings.ToLower(p.Series), term) {
			return true
		}
		return lo.SomeBy(p.FocusKeywords, func(kw string) bool {
			return strings.Contains(strings.ToLower(kw), term)
		})
	})
}

// Sort keys accepted by SortProducts. Anything else falls back to
// SortByName.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByVoltage   = "voltage"
	SortByCapacity  = "capacity"
)

// SortProducts returns a sorted copy. Sorting is stable, so equal keys
// keep their original relative order. Products priced on request sort
// after every numerically priced product under both price keys.
//
// Name ordering is a plain byte-wise comparison. Product names are
// generated from ASCII brand, series and category strings, where this
// matches locale-aware collation exactly.
func SortProducts(products []*model.Product, sortBy string) []*model.Product {
	sorted := make([]*model.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case SortByPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceLess(sorted[i], sorted[j], false)
		})
	case SortByPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceLess(sorted[i], sorted[j], true)
		})
	case SortByVoltage:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Specifications.Voltage < sorted[j].Specifications.Voltage
		})
	case SortByCapacity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Specifications.AmpHours > sorted[j].Specifications.AmpHours
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}

	return sorted
}

func priceLess(a, b *model.Product, descending bool) bool {
	av, aok := a.PriceValue()
	bv, bok := b.PriceValue()

	switch {
	case aok && bok:
		if descending {
			return av > bv
		}
		return av < bv
	case aok:
		return true
	default:
		return false
	}
}
