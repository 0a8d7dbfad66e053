package catalog

import (
	"context"

	"github.com/dukerupert/ezonekart/internal/domain"
)

// Provider defines read-only access to the product catalog.
// Implementations back onto whatever store holds the products.
type Provider interface {
	// List returns all products in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by id.
	Get(ctx context.Context, id int) (*domain.Product, error)

	// Search returns products whose name contains the query
	// (case-insensitive). A non-empty category narrows the results to
	// that category. An empty query matches everything.
	Search(ctx context.Context, query, category string) ([]domain.Product, error)

	// Categories returns the distinct categories in catalog order.
	Categories(ctx context.Context) ([]string, error)
}
