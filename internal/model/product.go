package model

import (
	"strconv"
	"time"
)

// PriceOnRequest is the sentinel stored instead of a numeric price for
// technologies that are quoted manually.
const PriceOnRequest = "Call for Pricing"

type Product struct {
	// Globally unique identifier, derived from brand, series, category
	// and technology slugs at generation time.
	ID string
	// Human-readable product name.
	Name string
	// Voltage and capacity product line, e.g. "6V-225".
	Series string
	// Target vehicle class, e.g. "Golf Cart Batteries".
	Category string
	// Battery chemistry, e.g. "Flooded Lead-Acid".
	Technology string
	// Page title used by the storefront head, templated from the brand.
	SEOTitle string
	// Meta description used by the storefront head.
	MetaDescription string
	// Electrical and physical specifications, fully populated at
	// generation time.
	Specifications Specifications
	// Voltage systems this battery can be banked into.
	SystemCompatibility []string
	// Typical use cases for the product's category.
	Applications []string
	// Marketing feature bullets.
	Features []string
	// Decimal price string, or PriceOnRequest.
	Price string
	// Whether the product can be added to a cart right now.
	InStock bool
	// Image file names for the product gallery.
	Images []string
	// IDs of up to four other products sharing series or category.
	RelatedProducts []string
	// Keywords the storefront search boosts on.
	FocusKeywords []string
	// Alt text for the primary product image.
	AltText string
	// Timestamp when the product was generated.
	CreatedAt time.Time
}

// PriceValue parses the decimal price. ok is false for PriceOnRequest
// or any other unparsable price.
func (p *Product) PriceValue() (float64, bool) {
	v, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ProductListParams narrow and order a product listing. Search takes
// precedence over Category when both are set. Nil price bounds leave
// that side open.
type ProductListParams struct {
	Category string
	Search   string
	SortBy   string
	MinPrice *float64
	MaxPrice *float64
}

type Specifications struct {
	// Nominal voltage in volts. Zero for services and accessories.
	Voltage int
	// Capacity in amp-hours. Zero for services and accessories.
	AmpHours int
	// Terminal style, e.g. "Universal".
	TerminalType string
	// Formatted external dimensions.
	Dimensions string
	// Formatted weight.
	Weight string
	// Expected service life, e.g. "3-5 years".
	Lifespan string
	// Expected charge cycles, e.g. "500-800 cycles".
	CycleLife string
}
