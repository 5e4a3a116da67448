package service

import (
	"context"
	"fmt"
	"strconv"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
)

// ProductNamer resolves product names for order lines.
type ProductNamer interface {
	Name(ctx context.Context, id int) string
}

type OrderService struct {
	repo     OrderStore
	products ProductNamer
	codes    CodeEncoder
	recorder EventRecorder
}

func NewOrderService(repo OrderStore, products ProductNamer, codes CodeEncoder, recorder EventRecorder) *OrderService {
	return &OrderService{
		repo:     repo,
		products: products,
		codes:    codes,
		recorder: recorder,
	}
}

func (s *OrderService) List(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityOrder)
	orders, err := s.repo.List(ctx)
	stop()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range orders {
		s.withReference(&orders[i])
	}
	recordActivity(s.recorder, actor, domain.AnonymousUser, metrics.ActivityViewOrders)
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int, actor domain.Actor) (domain.Order, error) {
	o, err := s.get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	recordActivity(s.recorder, actor, domain.AnonymousUser, metrics.ActivityViewOrderDetails)
	return o, nil
}

// GetByReference resolves a public reference code to its order.
func (s *OrderService) GetByReference(ctx context.Context, code string, actor domain.Actor) (domain.Order, error) {
	id, err := s.codes.Decode(code)
	if err != nil {
		return domain.Order{}, ErrNotFound
	}
	return s.Get(ctx, id, actor)
}

// Place creates an order in the Processing state.
func (s *OrderService) Place(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get next id: %w", err)
	}

	ref, err := s.codes.Encode(id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to generate reference: %w", err)
	}

	items := make([]domain.OrderItem, len(req.Products))
	for i, p := range req.Products {
		items[i] = domain.OrderItem{
			ProductID:   p.ProductID,
			ProductName: s.products.Name(ctx, p.ProductID),
			Quantity:    max(1, p.Quantity),
		}
	}

	userName := req.UserName
	if userName == "" {
		userName = "User " + strconv.Itoa(req.UserID)
	}

	stop := s.recorder.TimeStoreOperation(metrics.OpCreate, metrics.EntityOrder)
	order, err := s.repo.Create(ctx, domain.Order{
		ID:          id,
		Reference:   ref,
		UserID:      req.UserID,
		UserName:    userName,
		Products:    items,
		TotalAmount: req.TotalAmount,
		Status:      domain.OrderStatusProcessing,
	})
	stop()
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.recorder.RecordOrderPlaced(metrics.OrderPlacedEvent{
		OrderID:      order.ID,
		UserID:       order.UserID,
		UserName:     order.UserName,
		TotalAmount:  order.TotalAmount,
		ProductCount: len(order.Products),
	})
	s.recorder.RecordOrderStatus(metrics.OrderStatusEvent{OrderID: order.ID, Status: order.Status})
	s.recorder.RecordUserActivity(metrics.UserActivityEvent{
		UserID:       strconv.Itoa(order.UserID),
		UserName:     order.UserName,
		ActivityType: metrics.ActivityPlaceOrder,
	})
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, req domain.UpdateOrderStatusRequest) (domain.OrderStatusChange, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityOrder)
	order, previous, err := s.repo.UpdateStatus(ctx, id, req.Status)
	stop()
	if err != nil {
		return domain.OrderStatusChange{}, fmt.Errorf("failed to update order status: %w", translate(err))
	}
	s.withReference(&order)

	s.recorder.RecordOrderStatus(metrics.OrderStatusEvent{OrderID: id, Status: req.Status})
	recordActivity(s.recorder, req.Actor, domain.AdminUser, metrics.ActivityUpdateOrderStatus)
	return domain.OrderStatusChange{Order: order, PreviousStatus: previous}, nil
}

func (s *OrderService) get(ctx context.Context, id int) (domain.Order, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityOrder)
	o, err := s.repo.Get(ctx, id)
	stop()
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to get order: %w", translate(err))
	}
	s.withReference(&o)
	return o, nil
}

// withReference fills in the reference code of orders stored without one.
func (s *OrderService) withReference(o *domain.Order) {
	if o.Reference != "" {
		return
	}
	if ref, err := s.codes.Encode(o.ID); err == nil {
		o.Reference = ref
	}
}
