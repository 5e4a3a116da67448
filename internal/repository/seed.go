package repository

import (
	"time"

	"ecommerce/internal/domain"
)

func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Smartphone", Price: 699.99, Stock: 50, Category: "Electronics"},
		{ID: 2, Name: "Laptop", Price: 1299.99, Stock: 25, Category: "Electronics"},
		{ID: 3, Name: "Headphones", Price: 149.99, Stock: 100, Category: "Electronics"},
		{ID: 4, Name: "Coffee Maker", Price: 89.99, Stock: 30, Category: "Home Appliances"},
		{ID: 5, Name: "Running Shoes", Price: 79.99, Stock: 45, Category: "Sports"},
	}
}

func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:       1,
			UserID:   101,
			UserName: "Alice Smith",
			Products: []domain.OrderItem{
				{ProductID: 1, ProductName: "Smartphone", Quantity: 2},
				{ProductID: 3, ProductName: "Headphones", Quantity: 1},
			},
			TotalAmount: 1549.97,
			Status:      "Delivered",
			CreatedAt:   time.Date(2025, 4, 25, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:       2,
			UserID:   102,
			UserName: "Bob Johnson",
			Products: []domain.OrderItem{
				{ProductID: 2, ProductName: "Laptop", Quantity: 1},
				{ProductID: 4, ProductName: "Coffee Maker", Quantity: 1},
			},
			TotalAmount: 1389.98,
			Status:      domain.OrderStatusProcessing,
			CreatedAt:   time.Date(2025, 5, 1, 15, 45, 0, 0, time.UTC),
		},
	}
}

func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 101, Name: "Alice Smith", Email: "alice@example.com", Role: domain.RoleCustomer, Active: true},
		{ID: 102, Name: "Bob Johnson", Email: "bob@example.com", Role: domain.RoleCustomer, Active: true},
		{ID: 103, Name: "Charlie Brown", Email: "charlie@example.com", Role: domain.RoleAdmin, Active: true},
	}
}

func SeedCarts() []domain.Cart {
	return []domain.Cart{
		{
			ID:     1,
			UserID: 101,
			Products: []domain.CartItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 3, Quantity: 2},
			},
			LastUpdated: time.Date(2025, 5, 3, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          2,
			UserID:      102,
			Products:    []domain.CartItem{{ProductID: 2, Quantity: 1}},
			LastUpdated: time.Date(2025, 5, 4, 14, 30, 0, 0, time.UTC),
		},
	}
}
