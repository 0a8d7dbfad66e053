package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/dukerupert/ezonekart/internal/domain"
)

// MemoryProvider serves a fixed product list from memory.
// Products are treated as immutable after construction.
type MemoryProvider struct {
	products []domain.Product
	byID     map[int]int
}

// NewMemoryProvider creates a catalog provider over the given products.
func NewMemoryProvider(products []domain.Product) *MemoryProvider {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &MemoryProvider{products: products, byID: byID}
}

// List returns all products in catalog order.
func (m *MemoryProvider) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// Get retrieves a product by id.
func (m *MemoryProvider) Get(ctx context.Context, id int) (*domain.Product, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("catalog.get", "product", strconv.Itoa(id))
	}
	p := m.products[i]
	return &p, nil
}

// Search filters by case-insensitive name substring and optional category.
func (m *MemoryProvider) Search(ctx context.Context, query, category string) ([]domain.Product, error) {
	needle := strings.ToLower(query)

	var out []domain.Product
	for _, p := range m.products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories returns distinct categories in catalog order.
func (m *MemoryProvider) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range m.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}
