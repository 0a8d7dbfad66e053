package catalog

import (
	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/shopspring/decimal"
)

// DemoProducts returns the demo store's catalog: ten products across
// five categories, several of them on sale.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Laptop",
			Description: "Powerful laptop for work and play",
			Price:       decimal.NewFromInt(1200),
			Discount:    decimal.NewFromInt(10),
			Category:    "Electronics",
			Rating:      4.5,
			Stock:       10,
			ImageURL:    "/images/products/laptop.jpg",
		},
		{
			ID:          2,
			Name:        "Smartphone",
			Description: "Latest smartphone with a stunning display",
			Price:       decimal.NewFromInt(800),
			Discount:    decimal.Zero,
			Category:    "Electronics",
			Rating:      4.8,
			Stock:       5,
			ImageURL:    "/images/products/smartphone.jpg",
		},
		{
			ID:          3,
			Name:        "T-Shirt",
			Description: "Comfortable cotton t-shirt",
			Price:       decimal.NewFromInt(25),
			Discount:    decimal.NewFromInt(15),
			Category:    "Clothing",
			Rating:      4.2,
			Stock:       20,
			ImageURL:    "/images/products/tshirt.jpg",
		},
		{
			ID:          4,
			Name:        "Jeans",
			Description: "Classic denim jeans",
			Price:       decimal.NewFromInt(50),
			Discount:    decimal.Zero,
			Category:    "Clothing",
			Rating:      4.6,
			Stock:       15,
			ImageURL:    "/images/products/jeans.jpg",
		},
		{
			ID:          5,
			Name:        "Coffee Maker",
			Description: "Brews delicious coffee every morning",
			Price:       decimal.NewFromInt(100),
			Discount:    decimal.NewFromInt(5),
			Category:    "Home & Kitchen",
			Rating:      4.4,
			Stock:       8,
			ImageURL:    "/images/products/coffee-maker.jpg",
		},
		{
			ID:          6,
			Name:        "Cookware Set",
			Description: "Complete non-stick cookware set",
			Price:       decimal.NewFromInt(200),
			Discount:    decimal.Zero,
			Category:    "Home & Kitchen",
			Rating:      4.7,
			Stock:       12,
			ImageURL:    "/images/products/cookware-set.jpg",
		},
		{
			ID:          7,
			Name:        "The Great Novel",
			Description: "A captivating story you won't put down",
			Price:       decimal.NewFromInt(15),
			Discount:    decimal.NewFromInt(20),
			Category:    "Books",
			Rating:      4.9,
			Stock:       30,
			ImageURL:    "/images/products/great-novel.jpg",
		},
		{
			ID:          8,
			Name:        "Mystery Thriller",
			Description: "A page-turning mystery thriller",
			Price:       decimal.NewFromInt(18),
			Discount:    decimal.Zero,
			Category:    "Books",
			Rating:      4.5,
			Stock:       25,
			ImageURL:    "/images/products/mystery-thriller.jpg",
		},
		{
			ID:          9,
			Name:        "Running Shoes",
			Description: "Lightweight shoes built for distance",
			Price:       decimal.NewFromInt(90),
			Discount:    decimal.NewFromInt(10),
			Category:    "Sports",
			Rating:      4.3,
			Stock:       18,
			ImageURL:    "/images/products/running-shoes.jpg",
		},
		{
			ID:          10,
			Name:        "Yoga Mat",
			Description: "Non-slip mat for yoga and stretching",
			Price:       decimal.NewFromInt(30),
			Discount:    decimal.Zero,
			Category:    "Sports",
			Rating:      4.0,
			Stock:       22,
			ImageURL:    "/images/products/yoga-mat.jpg",
		},
	}
}
