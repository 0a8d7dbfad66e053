package catalog_test

import (
	"context"
	"testing"

	"github.com/dukerupert/ezonekart/internal/catalog"
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMemoryProvider_List(t *testing.T) {
	provider := catalog.NewMemoryProvider(catalog.DemoProducts())

	products, err := provider.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 10)
	assert.Equal(t, "Laptop", products[0].Name, "catalog order should be preserved")
	assert.Equal(t, "Yoga Mat", products[9].Name)
}

func TestMemoryProvider_Get(t *testing.T) {
	provider := catalog.NewMemoryProvider(catalog.DemoProducts())

	p, err := provider.Get(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, "1200", p.Price.String())
	assert.Equal(t, "10", p.Discount.String())
	assert.Equal(t, 10, p.Stock)
}

func TestMemoryProvider_Get_NotFound(t *testing.T) {
	provider := catalog.NewMemoryProvider(catalog.DemoProducts())

	p, err := provider.Get(context.Background(), 999)

	assert.Nil(t, p)
	assert.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestMemoryProvider_Search(t *testing.T) {
	provider := catalog.NewMemoryProvider(catalog.DemoProducts())

	tests := []struct {
		name      string
		query     string
		category  string
		wantNames []string
	}{
		{
			name:      "empty query matches everything",
			query:     "",
			category:  "",
			wantNames: []string{"Laptop", "Smartphone", "T-Shirt", "Jeans", "Coffee Maker", "Cookware Set", "The Great Novel", "Mystery Thriller", "Running Shoes", "Yoga Mat"},
		},
		{
			name:      "query is case-insensitive",
			query:     "LAPTOP",
			category:  "",
			wantNames: []string{"Laptop"},
		},
		{
			name:      "substring match",
			query:     "co",
			category:  "",
			wantNames: []string{"Coffee Maker", "Cookware Set"},
		},
		{
			name:      "category narrows results",
			query:     "",
			category:  "Books",
			wantNames: []string{"The Great Novel", "Mystery Thriller"},
		},
		{
			name:      "query and category combine",
			query:     "mystery",
			category:  "Books",
			wantNames: []string{"Mystery Thriller"},
		},
		{
			name:      "query matching outside the category yields nothing",
			query:     "laptop",
			category:  "Books",
			wantNames: nil,
		},
		{
			name:      "no match",
			query:     "submarine",
			category:  "",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := provider.Search(context.Background(), tt.query, tt.category)

			assert.NoError(t, err)
			var names []string
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestMemoryProvider_Categories(t *testing.T) {
	provider := catalog.NewMemoryProvider(catalog.DemoProducts())

	categories, err := provider.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Sports"}, categories)
}
