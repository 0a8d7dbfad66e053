package storefront

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/order"
	"github.com/go-playground/validator/v10"
)

// CheckoutHandler handles the checkout flow routes
type CheckoutHandler struct {
	checkout       domain.CheckoutService
	session        *domain.Session
	validate       *validator.Validate
	defaultAddress string
}

// NewCheckoutHandler creates a new checkout handler bound to the storefront session.
// The default address is offered to the shopper as a pre-filled suggestion.
func NewCheckoutHandler(checkout domain.CheckoutService, session *domain.Session, defaultAddress string) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:       checkout,
		session:        session,
		validate:       validator.New(),
		defaultAddress: defaultAddress,
	}
}

// checkoutStateResponse is the JSON shape for the checkout state
type checkoutStateResponse struct {
	Stage         string                `json:"stage"`
	Address       string                `json:"address,omitempty"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	OrderPending  bool                  `json:"order_pending"`
	Confirmation  *confirmationResponse `json:"confirmation,omitempty"`
	Cart          cartSummaryResponse   `json:"cart"`
}

// confirmationResponse is the JSON shape for a placed order
type confirmationResponse struct {
	OrderID       string             `json:"order_id"`
	Lines         []cartLineResponse `json:"lines"`
	GrandTotal    string             `json:"grand_total"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"payment_method"`
	PlacedAt      string             `json:"placed_at"`
}

func toConfirmationResponse(conf *order.Confirmation) *confirmationResponse {
	if conf == nil {
		return nil
	}

	lines := make([]cartLineResponse, 0, len(conf.Lines))
	for _, line := range conf.Lines {
		lines = append(lines, cartLineResponse{
			ProductID:           line.ProductID,
			Name:                line.Name,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice.StringFixed(2),
			DiscountedUnitPrice: line.DiscountedUnitPrice.StringFixed(2),
			LineTotal:           line.LineTotal.StringFixed(2),
		})
	}

	return &confirmationResponse{
		OrderID:       conf.OrderID,
		Lines:         lines,
		GrandTotal:    conf.GrandTotal.StringFixed(2),
		Address:       conf.Address,
		PaymentMethod: conf.PaymentMethod,
		PlacedAt:      conf.PlacedAt.Format(time.RFC3339),
	}
}

func toCheckoutStateResponse(state *domain.CheckoutState) checkoutStateResponse {
	resp := checkoutStateResponse{
		Stage:         string(state.Stage),
		Address:       state.Address,
		PaymentMethod: string(state.PaymentMethod),
		OrderPending:  state.OrderPending,
		Confirmation:  toConfirmationResponse(state.Confirmation),
	}
	if state.Summary != nil {
		resp.Cart = toCartSummaryResponse(state.Summary)
	}
	return resp
}

// selectAddressRequest is the JSON body for POST /checkout/address
type selectAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// selectPaymentMethodRequest is the JSON body for POST /checkout/payment-method
type selectPaymentMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=creditCard paypal"`
}

// State handles GET /checkout
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.State(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// Options handles GET /checkout/options
func (h *CheckoutHandler) Options(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"addresses": []string{h.defaultAddress},
		"payment_methods": []string{
			string(domain.PaymentMethodCreditCard),
			string(domain.PaymentMethodPayPal),
		},
	})
}

// Advance handles POST /checkout/advance
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.Advance(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.Back(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// Reset handles POST /checkout/reset
func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.checkout.ResetToCart(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// SelectAddress handles POST /checkout/address
func (h *CheckoutHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var req selectAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Invalid("checkout.select_address", "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, domain.Invalid("checkout.select_address", "An address is required"))
		return
	}

	if err := h.checkout.SelectAddress(r.Context(), h.session, req.Address); err != nil {
		respondError(w, r, err)
		return
	}

	state, err := h.checkout.State(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// SelectPaymentMethod handles POST /checkout/payment-method
func (h *CheckoutHandler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req selectPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Invalid("checkout.select_payment_method", "Invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, domain.Invalid("checkout.select_payment_method", "Payment method must be creditCard or paypal"))
		return
	}

	if err := h.checkout.SelectPaymentMethod(r.Context(), h.session, domain.PaymentMethod(req.Method)); err != nil {
		respondError(w, r, err)
		return
	}

	state, err := h.checkout.State(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toCheckoutStateResponse(state))
}

// PlaceOrder handles POST /checkout/place-order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	conf, err := h.checkout.PlaceOrder(r.Context(), h.session)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toConfirmationResponse(conf))
}
