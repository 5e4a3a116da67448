package domain

import "time"

const OrderStatusProcessing = "Processing"

type OrderItem struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID          int         `json:"id"`
	Reference   string      `json:"reference,omitempty"`
	UserID      int         `json:"userId"`
	UserName    string      `json:"userName"`
	Products    []OrderItem `json:"products"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type OrderItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"omitempty,gt=0"`
}

type CreateOrderRequest struct {
	UserID      int                `json:"userId" validate:"required,gt=0"`
	UserName    string             `json:"userName" validate:"omitempty,max=200"`
	Products    []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
	Actor
}

type OrderStatusChange struct {
	Order
	PreviousStatus string `json:"previousStatus"`
}
