package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/transport/http/middleware"
)

type CartService interface {
	Lines(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Add(ctx context.Context, params model.AddCartItemParams) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*model.CartItem, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context, sessionID string) error
}

type CartHandler struct {
	svc      CartService
	validate *validator.Validate
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GetCart handles GET /api/cart, returning the caller's session lines
// with the product join. Lines referencing deleted products carry a
// null product.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.Lines(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch cart items")
		return
	}

	writeJSON(w, r, http.StatusOK, CartLinesToDTO(lines))
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid cart item data")
		return
	}

	item, err := h.svc.Add(r.Context(), model.AddCartItemParams{
		SessionID: middleware.SessionID(r.Context()),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			writeError(w, r, http.StatusBadRequest, "Invalid cart item data")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Failed to add cart item")
		return
	}

	writeJSON(w, r, http.StatusCreated, CartItemToDTO(item))
}

// UpdateCartItem handles PUT /api/cart/{id}. Quantity is deliberately
// not validated here, matching the original storefront contract.
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid cart item data")
		return
	}

	item, err := h.svc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		h.mapCartError(w, r, err, "Failed to update cart item")
		return
	}

	writeJSON(w, r, http.StatusOK, CartItemToDTO(item))
}

func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.mapCartError(w, r, err, "Failed to remove cart item")
		return
	}

	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// ClearCart handles DELETE /api/cart. Clearing an empty cart succeeds.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context(), middleware.SessionID(r.Context())); err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

func (h *CartHandler) mapCartError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrCartItemNotFound):
		writeError(w, r, http.StatusNotFound, "Cart item not found")
	case errors.Is(err, model.ErrValidation):
		writeError(w, r, http.StatusBadRequest, "Invalid cart item data")
	default:
		writeError(w, r, http.StatusInternalServerError, fallback)
	}
}
