package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/catalog"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

const defaultRelatedLimit = 4

type CatalogService interface {
	Products(ctx context.Context, params model.ProductListParams) ([]*model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	Related(ctx context.Context, id string, limit int) ([]*model.Product, error)
	Featured(ctx context.Context, limit int) ([]*model.Product, error)
	Recommend(ctx context.Context, criteria model.RecommendationCriteria) ([]*model.Product, error)
	Statistics(ctx context.Context) (catalog.Statistics, error)
	Facets(ctx context.Context) (catalog.Facets, error)
	PriceBounds(ctx context.Context) (min, max float64, ok bool, err error)
}

type ProductHandler struct {
	svc CatalogService
}

func NewProductHandler(svc CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ListProducts handles GET /api/products. search takes precedence over
// category; sort, minPrice and maxPrice narrow and order the result.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := model.ProductListParams{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sort"),
	}

	for name, dst := range map[string]**float64{
		"minPrice": &params.MinPrice,
		"maxPrice": &params.MaxPrice,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid price filter")
			return
		}
		*dst = &v
	}

	products, err := h.svc.Products(r.Context(), params)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	writeJSON(w, r, http.StatusOK, ProductsToDTO(products))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.Product(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.mapProductError(w, r, err, "Failed to fetch product")
		return
	}

	writeJSON(w, r, http.StatusOK, ProductToDTO(product))
}

func (h *ProductHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, defaultRelatedLimit)

	related, err := h.svc.Related(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.mapProductError(w, r, err, "Failed to fetch related products")
		return
	}

	writeJSON(w, r, http.StatusOK, ProductsToDTO(related))
}

func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	featured, err := h.svc.Featured(r.Context(), limitParam(r, defaultRelatedLimit))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch featured products")
		return
	}

	writeJSON(w, r, http.StatusOK, ProductsToDTO(featured))
}

// Recommend handles POST /api/recommendations, the server-side half of
// the battery selector quiz. An empty result is a valid answer; the
// client shows its talk-to-a-human fallback.
func (h *ProductHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid recommendation criteria")
		return
	}

	recommended, err := h.svc.Recommend(r.Context(), model.RecommendationCriteria{
		VehicleType:   req.VehicleType,
		VoltageSystem: req.VoltageSystem,
		Usage:         req.Usage,
		Budget:        req.Budget,
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	writeJSON(w, r, http.StatusOK, ProductsToDTO(recommended))
}

func (h *ProductHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	writeJSON(w, r, http.StatusOK, StatisticsToDTO(stats))
}

func (h *ProductHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.svc.Facets(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to compute facets")
		return
	}

	var priceRange *PriceRange
	min, max, ok, err := h.svc.PriceBounds(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to compute facets")
		return
	}
	if ok {
		priceRange = &PriceRange{Min: min, Max: max}
	}

	writeJSON(w, r, http.StatusOK, FacetsToDTO(facets, priceRange))
}

func (h *ProductHandler) mapProductError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrProductNotFound):
		writeError(w, r, http.StatusNotFound, "Product not found")
	case errors.Is(err, model.ErrValidation):
		writeError(w, r, http.StatusBadRequest, "Invalid product id")
	default:
		writeError(w, r, http.StatusInternalServerError, fallback)
	}
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
