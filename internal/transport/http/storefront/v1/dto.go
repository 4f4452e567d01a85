package http

import (
	"time"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/catalog"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// Wire types. Field names match the storefront's historical JSON shape,
// so existing clients keep working unchanged.

type Specifications struct {
	Voltage      int    `json:"voltage"`
	AmpHours     int    `json:"ampHours"`
	TerminalType string `json:"terminalType"`
	Dimensions   string `json:"dimensions"`
	Weight       string `json:"weight"`
	Lifespan     string `json:"lifespan"`
	CycleLife    string `json:"cycleLife"`
}

type Product struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Series              string         `json:"series"`
	Category            string         `json:"category"`
	Technology          string         `json:"technology"`
	SEOTitle            string         `json:"seoTitle"`
	MetaDescription     string         `json:"metaDescription"`
	Specifications      Specifications `json:"specifications"`
	SystemCompatibility []string       `json:"systemCompatibility"`
	Applications        []string       `json:"applications"`
	Features            []string       `json:"features"`
	Price               string         `json:"price"`
	InStock             bool           `json:"inStock"`
	Images              []string       `json:"images"`
	RelatedProducts     []string       `json:"relatedProducts"`
	FocusKeywords       []string       `json:"focusKeywords"`
	AltText             string         `json:"altText"`
	CreatedAt           time.Time      `json:"createdAt"`
}

type CartItem struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartLine struct {
	CartItem
	// Product is null when the referenced product no longer exists.
	Product *Product `json:"product"`
}

type QuoteRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company,omitempty"`
	VehicleType  string    `json:"vehicleType"`
	BatteryNeeds string    `json:"batteryNeeds"`
	Quantity     int       `json:"quantity"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateCartItemRequest carries the new quantity as-is. The original
// storefront never validated it here and callers depend on that.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CreateQuoteRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Company      string `json:"company"`
	VehicleType  string `json:"vehicleType" validate:"required"`
	BatteryNeeds string `json:"batteryNeeds" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gte=1"`
	Message      string `json:"message"`
}

type RecommendationRequest struct {
	VehicleType   string `json:"vehicleType"`
	VoltageSystem string `json:"voltageSystem"`
	Usage         string `json:"usage"`
	Budget        string `json:"budget"`
}

type Statistics struct {
	TotalProducts int            `json:"totalProducts"`
	ByCategory    map[string]int `json:"byCategory"`
	ByTechnology  map[string]int `json:"byTechnology"`
	ByVoltage     map[string]int `json:"byVoltage"`
	AveragePrice  float64        `json:"averagePrice"`
	InStockCount  int            `json:"inStockCount"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Facets struct {
	Voltages     []int       `json:"voltages"`
	Technologies []string    `json:"technologies"`
	Series       []string    `json:"series"`
	Categories   []string    `json:"categories"`
	PriceRange   *PriceRange `json:"priceRange"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func ProductToDTO(p *model.Product) *Product {
	if p == nil {
		return nil
	}
	return &Product{
		ID:              p.ID,
		Name:            p.Name,
		Series:          p.Series,
		Category:        p.Category,
		Technology:      p.Technology,
		SEOTitle:        p.SEOTitle,
		MetaDescription: p.MetaDescription,
		Specifications: Specifications{
			Voltage:      p.Specifications.Voltage,
			AmpHours:     p.Specifications.AmpHours,
			TerminalType: p.Specifications.TerminalType,
			Dimensions:   p.Specifications.Dimensions,
			Weight:       p.Specifications.Weight,
			Lifespan:     p.Specifications.Lifespan,
			CycleLife:    p.Specifications.CycleLife,
		},
		SystemCompatibility: p.SystemCompatibility,
		Applications:        p.Applications,
		Features:            p.Features,
		Price:               p.Price,
		InStock:             p.InStock,
		Images:              p.Images,
		RelatedProducts:     p.RelatedProducts,
		FocusKeywords:       p.FocusKeywords,
		AltText:             p.AltText,
		CreatedAt:           p.CreatedAt,
	}
}

func ProductsToDTO(products []*model.Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToDTO(p))
	}
	return out
}

func CartItemToDTO(item *model.CartItem) *CartItem {
	if item == nil {
		return nil
	}
	return &CartItem{
		ID:        item.ID,
		SessionID: item.SessionID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
}

func CartLinesToDTO(lines []model.CartLine) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLine{
			CartItem: *CartItemToDTO(&line.CartItem),
			Product:  ProductToDTO(line.Product),
		})
	}
	return out
}

func QuoteRequestToDTO(q *model.QuoteRequest) *QuoteRequest {
	if q == nil {
		return nil
	}
	return &QuoteRequest{
		ID:           q.ID,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Company:      q.Company,
		VehicleType:  q.VehicleType,
		BatteryNeeds: q.BatteryNeeds,
		Quantity:     q.Quantity,
		Message:      q.Message,
		CreatedAt:    q.CreatedAt,
	}
}

func QuoteRequestsToDTO(quotes []*model.QuoteRequest) []*QuoteRequest {
	out := make([]*QuoteRequest, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteRequestToDTO(q))
	}
	return out
}

func StatisticsToDTO(stats catalog.Statistics) Statistics {
	return Statistics{
		TotalProducts: stats.TotalProducts,
		ByCategory:    stats.ByCategory,
		ByTechnology:  stats.ByTechnology,
		ByVoltage:     stats.ByVoltage,
		AveragePrice:  stats.AveragePrice,
		InStockCount:  stats.InStockCount,
	}
}

func FacetsToDTO(f catalog.Facets, priceRange *PriceRange) Facets {
	return Facets{
		Voltages:     f.Voltages,
		Technologies: f.Technologies,
		Series:       f.Series,
		Categories:   f.Categories,
		PriceRange:   priceRange,
	}
}
