package catalog

import (
	"fmt"
	"time"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// extraProducts are the hand-authored service and accessory listings
// that accompany the generated battery lineup.
func extraProducts(brand Brand, now time.Time) []*model.Product {
	serviceSpecs := model.Specifications{
		TerminalType: "All Types",
		Dimensions:   "Service",
		Weight:       "N/A",
		Lifespan:     "N/A",
		CycleLife:    "N/A",
	}
	coreSpecs := model.Specifications{
		TerminalType: "Core Exchange",
		Dimensions:   "Varies",
		Weight:       "Varies",
		Lifespan:     "N/A",
		CycleLife:    "N/A",
	}

	return []*model.Product{
		{
			ID:         fmt.Sprintf("%s-battery-installation", brand.Slug),
			Name:       "Professional Battery Installation Service",
			Series:     "Installation",
			Category:   "Services",
			Technology: "Professional Service",
			SEOTitle:   fmt.Sprintf("%s Battery Installation Service - Expert Professional Installation", brand.Mark),
			MetaDescription: fmt.Sprintf(
				"Professional battery installation service by %s experts. Safe, reliable installation for all battery types. Call %s",
				brand.Name, brand.Phone,
			),
			Specifications:      serviceSpecs,
			SystemCompatibility: []string{"All Systems"},
			Applications:        []string{"Golf Carts", "LSV", "NEV", "MSV", "All Electric Vehicles"},
			Features: []string{
				fmt.Sprintf("Professional installation by %s certified technicians", brand.Mark),
				"Proper battery placement and securing",
				"Electrical connection verification",
				"System testing and validation",
			},
			Price:         "200.00",
			InStock:       true,
			Images:        []string{fmt.Sprintf("%s-installation-service.jpg", brand.Slug)},
			FocusKeywords: []string{fmt.Sprintf("%s Battery Installation", brand.Mark), "Professional Installation", "Battery Service"},
			AltText:       fmt.Sprintf("%s Professional Battery Installation Service", brand.Mark),
			CreatedAt:     now,
		},
		{
			ID:         fmt.Sprintf("%s-6v-8v-core-charge", brand.Slug),
			Name:       "6V/8V Battery Core Charge",
			Series:     "Core",
			Category:   "Core Charges",
			Technology: "Core Exchange",
			SEOTitle:   fmt.Sprintf("%s 6V 8V Battery Core Charge - Recycling Fee", brand.Mark),
			MetaDescription: fmt.Sprintf(
				"6V and 8V battery core charge for recycling old batteries. Environmental responsibility by %s. Call %s",
				brand.Name, brand.Phone,
			),
			Specifications:      coreSpecs,
			SystemCompatibility: []string{"6V Systems", "8V Systems"},
			Applications:        []string{"Golf Carts", "LSV", "NEV", "Battery Recycling"},
			Features: []string{
				"Environmental battery recycling",
				"Core exchange program",
				"Refundable upon old battery return",
				fmt.Sprintf("%s eco-friendly initiative", brand.Mark),
			},
			Price:         "29.00",
			InStock:       true,
			Images:        []string{fmt.Sprintf("%s-core-charge.jpg", brand.Slug)},
			FocusKeywords: []string{fmt.Sprintf("%s Core Charge", brand.Mark), "Battery Recycling", "6V 8V Core"},
			AltText:       fmt.Sprintf("%s 6V 8V Battery Core Charge", brand.Mark),
			CreatedAt:     now,
		},
		{
			ID:         fmt.Sprintf("%s-12v-core-charge", brand.Slug),
			Name:       "12V Battery Core Charge",
			Series:     "Core",
			Category:   "Core Charges",
			Technology: "Core Exchange",
			SEOTitle:   fmt.Sprintf("%s 12V Battery Core Charge - Recycling Fee", brand.Mark),
			MetaDescription: fmt.Sprintf(
				"12V battery core charge for recycling old batteries. Environmental responsibility by %s. Call %s",
				brand.Name, brand.Phone,
			),
			Specifications:      coreSpecs,
			SystemCompatibility: []string{"12V Systems"},
			Applications:        []string{"NEV", "MSV", "Golf Carts", "Battery Recycling"},
			Features: []string{
				"Environmental battery recycling",
				"Core exchange program",
				"Refundable upon old battery return",
				fmt.Sprintf("%s eco-friendly initiative", brand.Mark),
			},
			Price:         "57.00",
			InStock:       true,
			Images:        []string{fmt.Sprintf("%s-core-charge.jpg", brand.Slug)},
			FocusKeywords: []string{fmt.Sprintf("%s Core Charge", brand.Mark), "Battery Recycling", "12V Core"},
			AltText:       fmt.Sprintf("%s 12V Battery Core Charge", brand.Mark),
			CreatedAt:     now,
		},
		{
			ID:         fmt.Sprintf("%s-battery-cable", brand.Slug),
			Name:       fmt.Sprintf("%s Battery Cable", brand.Mark),
			Series:     "Accessories",
			Category:   "Cables & Accessories",
			Technology: "Heavy-Duty Cable",
			SEOTitle:   fmt.Sprintf("%s Battery Cable - Professional Grade Connection Cable", brand.Mark),
			MetaDescription: fmt.Sprintf(
				"Professional grade battery cables by %s. Reliable connections for all battery systems. $10 per cable. Call %s",
				brand.Name, brand.Phone,
			),
			Specifications: model.Specifications{
				TerminalType: "Universal",
				Dimensions:   "Various Lengths",
				Weight:       "Varies by length",
				Lifespan:     "10+ years",
				CycleLife:    "N/A",
			},
			SystemCompatibility: []string{"All Voltage Systems"},
			Applications:        []string{"Golf Carts", "LSV", "NEV", "MSV", "All Electric Vehicles"},
			Features: []string{
				"Professional grade construction",
				"Corrosion-resistant terminals",
				"Flexible heavy-duty cable",
				fmt.Sprintf("%s quality standard", brand.Mark),
			},
			Price:         "10.00",
			InStock:       true,
			Images:        []string{fmt.Sprintf("%s-battery-cable.jpg", brand.Slug)},
			FocusKeywords: []string{fmt.Sprintf("%s Battery Cable", brand.Mark), "Battery Connections", "Professional Cable"},
			AltText:       fmt.Sprintf("%s Professional Battery Cable", brand.Mark),
			CreatedAt:     now,
		},
	}
}
