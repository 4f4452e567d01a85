package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/model"
)

// AdminTokenHeader authenticates the quote-request listing. The
// original storefront shipped this endpoint wide open; that was an
// oversight, not a contract.
const AdminTokenHeader = "X-Admin-Token"

type QuoteService interface {
	Create(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error)
	List(ctx context.Context) ([]*model.QuoteRequest, error)
}

type QuoteHandler struct {
	svc        QuoteService
	validate   *validator.Validate
	adminToken string
}

func NewQuoteHandler(svc QuoteService, adminToken string) *QuoteHandler {
	return &QuoteHandler{
		svc:        svc,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		adminToken: adminToken,
	}
}

func (h *QuoteHandler) CreateQuoteRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid quote request data")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid quote request data")
		return
	}

	quote, err := h.svc.Create(r.Context(), model.CreateQuoteRequestParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		VehicleType:  req.VehicleType,
		BatteryNeeds: req.BatteryNeeds,
		Quantity:     req.Quantity,
		Message:      req.Message,
	})
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			writeError(w, r, http.StatusBadRequest, "Invalid quote request data")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "Failed to create quote request")
		return
	}

	writeJSON(w, r, http.StatusCreated, QuoteRequestToDTO(quote))
}

// ListQuoteRequests handles GET /api/quote-requests. Requires the
// configured admin token; an empty configuration disables the endpoint.
func (h *QuoteHandler) ListQuoteRequests(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	quotes, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch quote requests")
		return
	}

	writeJSON(w, r, http.StatusOK, QuoteRequestsToDTO(quotes))
}

func (h *QuoteHandler) authorized(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	provided := r.Header.Get(AdminTokenHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.adminToken)) == 1
}
