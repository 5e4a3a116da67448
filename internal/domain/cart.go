package domain

import "time"

type CartItem struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gte=0"`
}

type Cart struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	Products    []CartItem `json:"products"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

type ReplaceCartRequest struct {
	Products []CartItem `json:"products" validate:"required,dive"`
}

type AddCartItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"omitempty,gt=0"`
}
