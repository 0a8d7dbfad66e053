package storefront

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/ezonekart/internal/catalog"
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/pricing"
	"github.com/dukerupert/ezonekart/internal/telemetry"
)

// ProductHandler handles product browsing routes
type ProductHandler struct {
	catalog catalog.Provider
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat catalog.Provider) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// productResponse is the JSON shape for a catalog product
type productResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           string  `json:"price"`
	Discount        string  `json:"discount"`
	DiscountedPrice string  `json:"discounted_price"`
	OnSale          bool    `json:"on_sale"`
	Category        string  `json:"category"`
	Rating          float64 `json:"rating"`
	Stock           int     `json:"stock"`
	ImageURL        string  `json:"image_url,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	discounted := p.Price
	if result, err := pricing.Apply(p.Price, p.Discount); err == nil {
		discounted = result.Price
	}

	return productResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           pricing.Round2(p.Price).StringFixed(2),
		Discount:        p.Discount.StringFixed(0),
		DiscountedPrice: pricing.Round2(discounted).StringFixed(2),
		OnSale:          p.OnSale(),
		Category:        p.Category,
		Rating:          p.Rating,
		Stock:           p.Stock,
		ImageURL:        p.ImageURL,
	}
}

// List handles GET /products with optional search and category filters
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	var (
		products []domain.Product
		err      error
	)
	if query == "" && category == "" {
		products, err = h.catalog.List(ctx)
	} else {
		products, err = h.catalog.Search(ctx, query, category)
		if telemetry.Business != nil {
			telemetry.Business.ProductSearches.WithLabelValues(searchFilterType(query, category)).Inc()
		}
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": out,
		"count":    len(out),
	})
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, r, domain.Invalid("products.get", "Product id must be a number"))
		return
	}

	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(*product))
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

func searchFilterType(query, category string) string {
	switch {
	case query != "" && category != "":
		return "search_and_category"
	case category != "":
		return "category"
	default:
		return "search"
	}
}
