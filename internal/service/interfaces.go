package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
)

type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id int, apply func(domain.Product) domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type OrderStore interface {
	NextID(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (domain.Order, error)
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (domain.Order, string, error)
}

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, int, error)
	Update(ctx context.Context, id int, apply func(domain.User) domain.User) (domain.User, error)
	Deactivate(ctx context.Context, id int) (int, error)
	ActiveCount(ctx context.Context) (int, error)
}

type CartStore interface {
	GetByUser(ctx context.Context, userID int) (domain.Cart, error)
	Replace(ctx context.Context, userID int, products []domain.CartItem) (domain.Cart, bool, error)
	AddItem(ctx context.Context, userID, productID, quantity int) (domain.Cart, bool, error)
	RemoveItem(ctx context.Context, userID, productID int) (domain.Cart, error)
	Clear(ctx context.Context, userID int) ([]domain.CartItem, error)
}

type Cache interface {
	Get(id int) (domain.Product, bool)
	Set(p domain.Product)
	Del(id int)
}

type CodeEncoder interface {
	Encode(orderID int) (string, error)
	Decode(code string) (int, error)
}

type EventRecorder interface {
	RecordProductViewed(e metrics.ProductEvent)
	RecordProductCreated(e metrics.ProductEvent)
	RecordOrderPlaced(e metrics.OrderPlacedEvent)
	RecordOrderStatus(e metrics.OrderStatusEvent)
	RecordUserActivity(e metrics.UserActivityEvent)
	RecordCartOperation(e metrics.CartOperationEvent)
	SetActiveUsers(n int)
	ObserveStoreOperation(op metrics.StoreOperation, entity metrics.Entity, d time.Duration)
	TimeStoreOperation(op metrics.StoreOperation, entity metrics.Entity) func()
}
