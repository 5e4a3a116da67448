package handler

import (
	"context"
	"io"

	"ecommerce/internal/domain"
)

type ProductService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Product, error)
	Get(ctx context.Context, id int, actor domain.Actor) (domain.Product, error)
	Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error)
	Update(ctx context.Context, id int, req domain.UpdateProductRequest) (domain.Product, error)
	Delete(ctx context.Context, id int, actor domain.Actor) error
}

type OrderService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Order, error)
	Get(ctx context.Context, id int, actor domain.Actor) (domain.Order, error)
	GetByReference(ctx context.Context, code string, actor domain.Actor) (domain.Order, error)
	Place(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int, req domain.UpdateOrderStatusRequest) (domain.OrderStatusChange, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.UserView, error)
	Get(ctx context.Context, id int) (domain.UserView, error)
	Create(ctx context.Context, req domain.CreateUserRequest) (domain.UserView, error)
	Update(ctx context.Context, id int, req domain.UpdateUserRequest) (domain.UserView, error)
	Deactivate(ctx context.Context, id int) error
}

type CartService interface {
	Get(ctx context.Context, userID int) (domain.Cart, error)
	Replace(ctx context.Context, userID int, req domain.ReplaceCartRequest) (domain.Cart, bool, error)
	AddItem(ctx context.Context, userID int, req domain.AddCartItemRequest) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int) (domain.Cart, error)
	Clear(ctx context.Context, userID int) error
}

type MetricsExporter interface {
	ContentType() string
	WriteTo(w io.Writer) error
}

type Validator interface {
	Validate(i any) error
}
