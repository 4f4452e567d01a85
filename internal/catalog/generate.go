package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// The three fixed dimension lists the catalog is generated from. The
// full cross product is 6 series x 4 categories x 4 technologies = 96
// battery products; four hand-authored service and accessory products
// are appended on top.

type voltageSeries struct {
	Series    string
	Voltage   int
	AmpHours  int
	BasePrice float64
}

type category struct {
	Name        string
	Slug        string
	Description string
}

type technology struct {
	Name            string
	Slug            string
	Description     string
	PriceMultiplier float64
	CallForPricing  bool
	Lifespan        string
	CycleLife       string
}

var voltageSeriesConfig = []voltageSeries{
	{Series: "6V-225", Voltage: 6, AmpHours: 225, BasePrice: 168.00},
	{Series: "6V-305", Voltage: 6, AmpHours: 305, BasePrice: 168.00},
	{Series: "8V-170", Voltage: 8, AmpHours: 170, BasePrice: 178.00},
	{Series: "8V-225", Voltage: 8, AmpHours: 225, BasePrice: 178.00},
	{Series: "12V-100", Voltage: 12, AmpHours: 100, BasePrice: 265.00},
	{Series: "12V-150", Voltage: 12, AmpHours: 150, BasePrice: 265.00},
}

var categories = []category{
	{Name: "Golf Cart", Slug: "golf-cart", Description: "Golf Cart Batteries"},
	{Name: "LSV", Slug: "lsv", Description: "Low Speed Vehicle (LSV) Batteries"},
	{Name: "NEV", Slug: "nev", Description: "Neighborhood Electric Vehicle (NEV) Batteries"},
	{Name: "MSV", Slug: "msv", Description: "Medium Speed Vehicle (MSV) Batteries"},
}

var technologies = []technology{
	{
		Name:            "Flooded Lead-Acid",
		Slug:            "flooded",
		Description:     "Traditional, economical",
		PriceMultiplier: 1.0,
		Lifespan:        "3-5 years",
		CycleLife:       "500-800 cycles",
	},
	{
		Name:            "AGM",
		Slug:            "agm",
		Description:     "Sealed, maintenance-free",
		PriceMultiplier: 1.3,
		CallForPricing:  true,
		Lifespan:        "4-6 years",
		CycleLife:       "600-1000 cycles",
	},
	{
		Name:            "Gel",
		Slug:            "gel",
		Description:     "Deep-cycle performance",
		PriceMultiplier: 1.7,
		Lifespan:        "5-7 years",
		CycleLife:       "800-1200 cycles",
	},
	{
		Name:            "Lithium-Ion (LiFePO4)",
		Slug:            "lithium",
		Description:     "Premium, long-lasting",
		PriceMultiplier: 3.0,
		CallForPricing:  true,
		Lifespan:        "8-10 years",
		CycleLife:       "2000-5000 cycles",
	},
}

const relatedLimit = 4

// Generate builds the full deterministic product lineup for a brand.
// The returned slice order is stable; related products are computed
// against it, so regenerating always yields the same catalog.
func Generate(brand Brand, now time.Time) []*model.Product {
	out := make([]*model.Product, 0, len(voltageSeriesConfig)*len(categories)*len(technologies)+4)

	for _, vs := range voltageSeriesConfig {
		for _, cat := range categories {
			for _, tech := range technologies {
				out = append(out, generateProduct(brand, vs, cat, tech, now))
			}
		}
	}

	out = append(out, extraProducts(brand, now)...)

	// Second pass: the first four other products sharing series or
	// category, in generation order.
	for _, p := range out {
		related := make([]string, 0, relatedLimit)
		for _, other := range out {
			if other.ID == p.ID {
				continue
			}
			if other.Series != p.Series && other.Category != p.Category {
				continue
			}
			related = append(related, other.ID)
			if len(related) == relatedLimit {
				break
			}
		}
		p.RelatedProducts = related
	}

	return out
}

func generateProduct(brand Brand, vs voltageSeries, cat category, tech technology, now time.Time) *model.Product {
	id := strings.ToLower(fmt.Sprintf("%s-%s-%s-%s", brand.Slug, vs.Series, cat.Slug, tech.Slug))

	price := model.PriceOnRequest
	if !tech.CallForPricing {
		price = formatPrice(vs.BasePrice * tech.PriceMultiplier)
	}

	return &model.Product{
		ID:         id,
		Name:       fmt.Sprintf("%s %s %s", brand.Mark, vs.Series, cat.Description),
		Series:     vs.Series,
		Category:   cat.Description,
		Technology: tech.Name,
		SEOTitle:   fmt.Sprintf("%s %s %s - %s", brand.Mark, vs.Series, cat.Description, tech.Description),
		MetaDescription: fmt.Sprintf(
			"%s %s %s with %dAh capacity. Professional %s for reliable performance. Call %s",
			brand.Name, vs.Series, cat.Description, vs.AmpHours, cat.Description, brand.Phone,
		),
		Specifications: model.Specifications{
			Voltage:      vs.Voltage,
			AmpHours:     vs.AmpHours,
			TerminalType: "Universal",
			Dimensions: fmt.Sprintf("%s x %s x %s inches",
				formatDim(10+float64(vs.Voltage)*0.5),
				formatDim(7+float64(vs.Voltage)*0.2),
				formatDim(10+float64(vs.Voltage)*0.3),
			),
			Weight:    fmt.Sprintf("%s lbs", formatDim(50+float64(vs.AmpHours)*0.2)),
			Lifespan:  tech.Lifespan,
			CycleLife: tech.CycleLife,
		},
		SystemCompatibility: systemCompatibility(vs.Voltage),
		Applications:        applications(cat.Name),
		Features: []string{
			fmt.Sprintf("Deep-cycle design for %s", cat.Description),
			fmt.Sprintf("%s %s standard", tech.Description, brand.Name),
			fmt.Sprintf("Professional %s solution", cat.Description),
			fmt.Sprintf("Proven %s reliability", brand.Name),
		},
		Price:   price,
		InStock: true,
		Images: []string{
			fmt.Sprintf("%s-%s-battery-1.jpg", brand.Slug, cat.Slug),
			fmt.Sprintf("%s-%s-battery-2.jpg", brand.Slug, cat.Slug),
		},
		FocusKeywords: []string{
			brand.Name,
			cat.Description,
			fmt.Sprintf("%s %s", vs.Series, cat.Description),
		},
		AltText: fmt.Sprintf("%s %s %s - %s by %s",
			brand.Mark, vs.Series, cat.Description, tech.Description, brand.Name),
		CreatedAt: now,
	}
}

func systemCompatibility(voltage int) []string {
	switch voltage {
	case 6:
		return []string{"36V (6 batteries)", "48V (8 batteries)"}
	case 8:
		return []string{"48V (6 batteries)", "72V (9 batteries)"}
	default:
		return []string{"12V (1 battery)", "24V (2 batteries)", "48V (4 batteries)"}
	}
}

func applications(categoryName string) []string {
	switch categoryName {
	case "Golf Cart":
		return []string{"Golf Carts", "Utility Vehicles", "Club Cars"}
	case "LSV":
		return []string{"Low Speed Vehicles", "Neighborhood Transport", "Campus Vehicles"}
	case "NEV":
		return []string{"Neighborhood Electric Vehicles", "Street Legal Vehicles", "Community Transport"}
	default:
		return []string{"Medium Speed Vehicles", "Enhanced Performance", "Extended Range"}
	}
}

// formatPrice rounds to cents and drops trailing zeros, matching the
// storefront's historical wire format ("168", "285.6").
func formatPrice(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
