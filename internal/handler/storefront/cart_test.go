package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/service"
	"github.com/shopspring/decimal"
)

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	addItemFunc          func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error)
	increaseQuantityFunc func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error)
	decreaseQuantityFunc func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error)
	removeItemFunc       func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error)
	clearCartFunc        func(ctx context.Context, s *domain.Session) error
	summaryFunc          func(ctx context.Context, s *domain.Session) (*domain.CartSummary, error)
}

func (m *mockCartService) AddItem(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, s, productID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) IncreaseQuantity(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	if m.increaseQuantityFunc != nil {
		return m.increaseQuantityFunc(ctx, s, productID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) DecreaseQuantity(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	if m.decreaseQuantityFunc != nil {
		return m.decreaseQuantityFunc(ctx, s, productID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
	if m.removeItemFunc != nil {
		return m.removeItemFunc(ctx, s, productID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) ClearCart(ctx context.Context, s *domain.Session) error {
	if m.clearCartFunc != nil {
		return m.clearCartFunc(ctx, s)
	}
	return nil
}

func (m *mockCartService) Summary(ctx context.Context, s *domain.Session) (*domain.CartSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, s)
	}
	return emptySummary(), nil
}

func emptySummary() *domain.CartSummary {
	return &domain.CartSummary{
		Subtotal:           decimal.Zero,
		DiscountedSubtotal: decimal.Zero,
		TotalDiscount:      decimal.Zero,
		ShippingCost:       decimal.Zero,
		GrandTotal:         decimal.Zero,
	}
}

func laptopSummary() *domain.CartSummary {
	return &domain.CartSummary{
		Lines: []domain.CartLineView{
			{
				Product:             domain.Product{ID: 1, Name: "Laptop"},
				Quantity:            1,
				UnitPrice:           decimal.NewFromInt(1200),
				DiscountedUnitPrice: decimal.NewFromInt(1080),
				LineDiscount:        decimal.NewFromInt(120),
				LineTotal:           decimal.NewFromInt(1080),
			},
		},
		ItemCount:          1,
		Subtotal:           decimal.NewFromInt(1200),
		DiscountedSubtotal: decimal.NewFromInt(1080),
		TotalDiscount:      decimal.NewFromInt(120),
		ShippingCost:       decimal.NewFromInt(10),
		GrandTotal:         decimal.NewFromInt(1090),
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func errorCodeFromBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestCartHandler_Summary(t *testing.T) {
	h := NewCartHandler(&mockCartService{
		summaryFunc: func(ctx context.Context, s *domain.Session) (*domain.CartSummary, error) {
			return laptopSummary(), nil
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if got := body["grand_total"]; got != "1090.00" {
		t.Errorf("expected grand_total 1090.00, got %v", got)
	}
	if got := body["item_count"]; got != float64(1) {
		t.Errorf("expected item_count 1, got %v", got)
	}
}

func TestCartHandler_Add(t *testing.T) {
	var gotProductID int
	h := NewCartHandler(&mockCartService{
		addItemFunc: func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
			gotProductID = productID
			return laptopSummary(), nil
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id": 1}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotProductID != 1 {
		t.Errorf("expected product_id 1 passed to service, got %d", gotProductID)
	}

	body := decodeBody(t, rec)
	if got := body["subtotal"]; got != "1200.00" {
		t.Errorf("expected subtotal 1200.00, got %v", got)
	}
}

func TestCartHandler_Add_InvalidBody(t *testing.T) {
	h := NewCartHandler(&mockCartService{}, domain.NewSession())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"product_id":`},
		{name: "missing product id", body: `{}`},
		{name: "negative product id", body: `{"product_id": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Add(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if code := errorCodeFromBody(t, rec); code != domain.EINVALID {
				t.Errorf("expected code %s, got %s", domain.EINVALID, code)
			}
		})
	}
}

func TestCartHandler_Add_StockExceeded(t *testing.T) {
	h := NewCartHandler(&mockCartService{
		addItemFunc: func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
			return nil, service.ErrStockExceeded
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id": 1}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if code := errorCodeFromBody(t, rec); code != domain.ECONFLICT {
		t.Errorf("expected code %s, got %s", domain.ECONFLICT, code)
	}
}

func TestCartHandler_Increase(t *testing.T) {
	var gotProductID int
	h := NewCartHandler(&mockCartService{
		increaseQuantityFunc: func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
			gotProductID = productID
			return laptopSummary(), nil
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodPost, "/cart/items/1/increase", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Increase(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotProductID != 1 {
		t.Errorf("expected product_id 1 passed to service, got %d", gotProductID)
	}
}

func TestCartHandler_Increase_BadID(t *testing.T) {
	h := NewCartHandler(&mockCartService{}, domain.NewSession())

	req := httptest.NewRequest(http.MethodPost, "/cart/items/laptop/increase", nil)
	req.SetPathValue("id", "laptop")
	rec := httptest.NewRecorder()
	h.Increase(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandler_Remove_NotInCart(t *testing.T) {
	h := NewCartHandler(&mockCartService{
		removeItemFunc: func(ctx context.Context, s *domain.Session, productID int) (*domain.CartSummary, error) {
			return nil, service.ErrItemNotInCart
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Remove(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	h := NewCartHandler(&mockCartService{
		clearCartFunc: func(ctx context.Context, s *domain.Session) error {
			cleared = true
			return nil
		},
	}, domain.NewSession())

	req := httptest.NewRequest(http.MethodPost, "/cart/clear", nil)
	rec := httptest.NewRecorder()
	h.Clear(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !cleared {
		t.Error("expected ClearCart to be called")
	}

	body := decodeBody(t, rec)
	if got := body["item_count"]; got != float64(0) {
		t.Errorf("expected item_count 0, got %v", got)
	}
}
