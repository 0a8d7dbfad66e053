package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/go-playground/validator/v10"
)

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cart     domain.CartService
	session  *domain.Session
	validate *validator.Validate
}

// NewCartHandler creates a new cart handler bound to the storefront session
func NewCartHandler(cart domain.CartService, session *domain.Session) *CartHandler {
	return &CartHandler{
		cart:     cart,
		session:  session,
		validate: validator.New(),
	}
}

// cartLineResponse is the JSON shape for a single cart line
type cartLineResponse struct {
	ProductID           int    `json:"product_id"`
	Name                string `json:"name"`
	Quantity            int    `json:"quantity"`
	UnitPrice           string `json:"unit_price"`
	DiscountedUnitPrice string `json:"discounted_unit_price"`
	LineDiscount        string `json:"line_discount"`
	LineTotal           string `json:"line_total"`
	ImageURL            string `json:"image_url,omitempty"`
}

// cartSummaryResponse is the JSON shape for the cart with totals
type cartSummaryResponse struct {
	Lines              []cartLineResponse `json:"lines"`
	ItemCount          int                `json:"item_count"`
	Subtotal           string             `json:"subtotal"`
	DiscountedSubtotal string             `json:"discounted_subtotal"`
	TotalDiscount      string             `json:"total_discount"`
	ShippingCost       string             `json:"shipping_cost"`
	GrandTotal         string             `json:"grand_total"`
}

func toCartSummaryResponse(summary *domain.CartSummary) cartSummaryResponse {
	lines := make([]cartLineResponse, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, cartLineResponse{
			ProductID:           line.Product.ID,
			Name:                line.Product.Name,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice.StringFixed(2),
			DiscountedUnitPrice: line.DiscountedUnitPrice.StringFixed(2),
			LineDiscount:        line.LineDiscount.StringFixed(2),
			LineTotal:           line.LineTotal.StringFixed(2),
			ImageURL:            line.Product.ImageURL,
		})
	}

	return cartSummaryResponse{
		Lines:              lines,
		ItemCount:          summary.ItemCount,
		Subtotal:           summary.Subtotal.StringFixed(2),
		DiscountedSubtotal: summary.DiscountedSubtotal.StringFixed(2),
		TotalDiscount:      summary.TotalDiscount.StringFixed(2),
		ShippingCost:       summary.ShippingCost.StringFixed(2),
		GrandTotal:         summary.GrandTotal.StringFixed(2),
	}
}

// addItemRequest is the JSON body for POST /cart/items
type addItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// Summary handles GET /cart
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Summary(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Invalid("cart.add", "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, domain.Invalid("cart.add", "A positive product_id is required"))
		return
	}

	summary, err := h.cart.AddItem(r.Context(), h.session, req.ProductID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

// Increase handles POST /cart/items/{id}/increase
func (h *CartHandler) Increase(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.IncreaseQuantity)
}

// Decrease handles POST /cart/items/{id}/decrease
func (h *CartHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.DecreaseQuantity)
}

// Remove handles DELETE /cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.RemoveItem)
}

// Clear handles POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.ClearCart(r.Context(), h.session); err != nil {
		respondError(w, r, err)
		return
	}

	summary, err := h.cart.Summary(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

type cartLineOp func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error)

func (h *CartHandler) adjust(w http.ResponseWriter, r *http.Request, op cartLineOp) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, r, domain.Invalid("cart.adjust", "Product id must be a number"))
		return
	}

	summary, err := op(r.Context(), h.session, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}
