package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// Statistics is a pure reduction over a product list.
type Statistics struct {
	TotalProducts int
	ByCategory    map[string]int
	ByTechnology  map[string]int
	ByVoltage     map[string]int
	// Mean of the numeric prices. Products priced on request are
	// ignored by both the sum and the divisor.
	AveragePrice float64
	InStockCount int
}

func ComputeStatistics(products []*model.Product) Statistics {
	stats := Statistics{
		TotalProducts: len(products),
		ByCategory:    make(map[string]int),
		ByTechnology:  make(map[string]int),
		ByVoltage:     make(map[string]int),
	}

	var totalPrice float64
	var priced int

	for _, p := range products {
		stats.ByCategory[p.Category]++
		stats.ByTechnology[p.Technology]++
		stats.ByVoltage[fmt.Sprintf("%dV", p.Specifications.Voltage)]++

		if price, ok := p.PriceValue(); ok {
			totalPrice += price
			priced++
		}
		if p.InStock {
			stats.InStockCount++
		}
	}

	if priced > 0 {
		stats.AveragePrice = totalPrice / float64(priced)
	}

	return stats
}

// Facets are the distinct filterable values present in a product list,
// in first-seen order except voltages, which sort ascending. Zero
// voltages (services, accessories) are omitted.
type Facets struct {
	Voltages     []int
	Technologies []string
	Series       []string
	Categories   []string
}

func ComputeFacets(products []*model.Product) Facets {
	var f Facets
	seenVoltage := make(map[int]bool)
	seenTech := make(map[string]bool)
	seenSeries := make(map[string]bool)
	seenCategory := make(map[string]bool)

	for _, p := range products {
		if v := p.Specifications.Voltage; v != 0 && !seenVoltage[v] {
			seenVoltage[v] = true
			f.Voltages = append(f.Voltages, v)
		}
		if !seenTech[p.Technology] {
			seenTech[p.Technology] = true
			f.Technologies = append(f.Technologies, p.Technology)
		}
		if !seenSeries[p.Series] {
			seenSeries[p.Series] = true
			f.Series = append(f.Series, p.Series)
		}
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			f.Categories = append(f.Categories, p.Category)
		}
	}

	sort.Ints(f.Voltages)
	return f
}

// PriceBounds returns the numeric price range. ok is false when no
// product has a numeric price.
func PriceBounds(products []*model.Product) (min, max float64, ok bool) {
	for _, p := range products {
		price, parsable := p.PriceValue()
		if !parsable {
			continue
		}
		if !ok || price < min {
			min = price
		}
		if !ok || price > max {
			max = price
		}
		ok = true
	}
	return min, max, ok
}

// Related returns up to limit products sharing series, category or
// technology with current, excluding current itself.
func Related(products []*model.Product, current *model.Product, limit int) []*model.Product {
	out := make([]*model.Product, 0, limit)
	for _, p := range products {
		if p.ID == current.ID {
			continue
		}
		if p.Series != current.Series &&
			p.Category != current.Category &&
			p.Technology != current.Technology {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// batteryCategories fixes the iteration order for Featured; map order
// would make the pick nondeterministic.
var batteryCategories = []string{
	"Golf Cart Batteries",
	"Low Speed Vehicle (LSV) Batteries",
	"Neighborhood Electric Vehicle (NEV) Batteries",
	"Medium Speed Vehicle (MSV) Batteries",
}

// Featured picks one product per battery category, preferring premium
// chemistries, up to limit.
func Featured(products []*model.Product, limit int) []*model.Product {
	featured := make([]*model.Product, 0, limit)

	for _, cat := range batteryCategories {
		if len(featured) >= limit {
			break
		}
		inCategory := ByCategory(products, cat)
		if len(inCategory) == 0 {
			continue
		}
		premium, found := lo.Find(inCategory, func(p *model.Product) bool {
			return strings.Contains(p.Technology, "Lithium") || strings.Contains(p.Technology, "AGM")
		})
		if found {
			featured = append(featured, premium)
		} else {
			featured = append(featured, inCategory[0])
		}
	}

	return featured
}
