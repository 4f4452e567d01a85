package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// vehicleCategories maps quiz vehicle slugs to catalog categories.
var vehicleCategories = map[string]string{
	"golf-cart": "Golf Cart Batteries",
	"lsv":       "Low Speed Vehicle (LSV) Batteries",
	"nev":       "Neighborhood Electric Vehicle (NEV) Batteries",
	"msv":       "Medium Speed Vehicle (MSV) Batteries",
}

// voltageSystems maps quiz voltage-system slugs to the battery voltages
// that can be banked into them.
var voltageSystems = map[string][]int{
	"36v": {6},
	"48v": {6, 8},
	"72v": {12},
}

// Recommend narrows the catalog with the quiz's hard filters and ranks
// the survivors by a relevance score. The caller is responsible for a
// talk-to-a-human fallback when nothing survives.
func Recommend(products []*model.Product, criteria model.RecommendationCriteria) []*model.Product {
	filtered := products

	if target, ok := vehicleCategories[criteria.VehicleType]; ok {
		filtered = ByCategory(filtered, target)
	}

	if criteria.VoltageSystem != "" && criteria.VoltageSystem != model.VoltageSystemNotSure {
		if allowed, ok := voltageSystems[criteria.VoltageSystem]; ok {
			filtered = lo.Filter(filtered, func(p *model.Product, _ int) bool {
				return lo.Contains(allowed, p.Specifications.Voltage)
			})
		}
	}

	switch criteria.Budget {
	case model.BudgetEconomy:
		filtered = lo.Filter(filtered, func(p *model.Product, _ int) bool {
			return strings.Contains(p.Technology, "Flooded")
		})
	case model.BudgetProfessional:
		filtered = lo.Filter(filtered, func(p *model.Product, _ int) bool {
			return strings.Contains(p.Technology, "Lithium")
		})
	}

	ranked := make([]*model.Product, len(filtered))
	copy(ranked, filtered)
	sort.SliceStable(ranked, func(i, j int) bool {
		return relevanceScore(ranked[i], criteria) > relevanceScore(ranked[j], criteria)
	})

	return ranked
}

func relevanceScore(p *model.Product, criteria model.RecommendationCriteria) int {
	score := 0

	if criteria.Budget == model.BudgetProfessional && strings.Contains(p.Technology, "Lithium") {
		score += 10
	}
	if criteria.Budget == model.BudgetEconomy && strings.Contains(p.Technology, "Flooded") {
		score += 10
	}
	if criteria.Usage == model.UsageHeavy &&
		(strings.Contains(p.Technology, "AGM") || strings.Contains(p.Technology, "Gel")) {
		score += 5
	}

	return score
}
