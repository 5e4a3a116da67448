package metrics

import "time"

type HTTPMetric struct {
	Method     string
	Route      string
	StatusCode int
	Duration   time.Duration
}

type ProductEvent struct {
	ProductID   int
	ProductName string
	Category    string
	Price       float64
}

type OrderPlacedEvent struct {
	OrderID      int
	UserID       int
	UserName     string
	TotalAmount  float64
	ProductCount int
}

type OrderStatusEvent struct {
	OrderID int
	Status  string
}

type UserActivityEvent struct {
	UserID       string
	UserName     string
	ActivityType ActivityType
}

type CartOperationEvent struct {
	UserID      int
	ProductID   int
	ProductName string
	Operation   CartOperation
}

type InfraMetric struct {
	CacheHits     uint64
	CacheMisses   uint64
	CacheHitRatio float64
}

type ActivityType string

const (
	ActivityBrowseProducts    ActivityType = "browse_products"
	ActivityViewProduct       ActivityType = "view_product"
	ActivityCreateProduct     ActivityType = "create_product"
	ActivityUpdateProduct     ActivityType = "update_product"
	ActivityDeleteProduct     ActivityType = "delete_product"
	ActivityViewOrders        ActivityType = "view_orders"
	ActivityViewOrderDetails  ActivityType = "view_order_details"
	ActivityPlaceOrder        ActivityType = "place_order"
	ActivityUpdateOrderStatus ActivityType = "update_order_status"
)

type CartOperation string

const (
	CartAdd    CartOperation = "add"
	CartRemove CartOperation = "remove"
	CartClear  CartOperation = "clear"
)

type StoreOperation string

const (
	OpRead   StoreOperation = "read"
	OpCreate StoreOperation = "create"
	OpUpdate StoreOperation = "update"
	OpDelete StoreOperation = "delete"
)

type Entity string

const (
	EntityProduct Entity = "product"
	EntityOrder   Entity = "order"
	EntityUser    Entity = "user"
	EntityCart    Entity = "cart"
)
