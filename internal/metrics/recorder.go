package metrics

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"ecommerce/internal/config"
)

const (
	HTTPRequestsTotal          = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	ProductViewsTotal          = "ecommerce_product_views_total"
	ProductCreationsTotal      = "ecommerce_product_creations_total"
	OrderPlacedTotal           = "ecommerce_order_placed_total"
	OrderStatusTotal           = "ecommerce_order_status_total"
	UserActivityTotal          = "ecommerce_user_activity_total"
	CartOperationsTotal        = "ecommerce_cart_operations_total"
	ActiveUsers                = "ecommerce_active_users"
	DBOperationDurationSeconds = "ecommerce_db_operation_duration_seconds"
	ProductCacheHits           = "ecommerce_product_cache_hits"
	ProductCacheMisses         = "ecommerce_product_cache_misses"
	ProductCacheHitRatio       = "ecommerce_product_cache_hit_ratio"
)

// Redacted replaces identifier, name, price and amount label values when
// detailed labels are disabled.
const Redacted = "redacted"

var (
	httpLabels    = []string{"method", "route", "status_code"}
	productLabels = []string{"product_id", "product_name", "category", "price"}
)

// Definitions returns every metric the recorder feeds, in exposition order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:       HTTPRequestDurationSeconds,
			Help:       "Duration of HTTP requests in seconds",
			Kind:       KindHistogram,
			LabelNames: httpLabels,
			Buckets:    []float64{0.1, 0.3, 0.5, 0.7, 1, 3, 5, 7, 10},
		},
		{
			Name:       HTTPRequestsTotal,
			Help:       "Total number of HTTP requests",
			Kind:       KindCounter,
			LabelNames: httpLabels,
		},
		{
			Name:       ProductViewsTotal,
			Help:       "Total number of product views",
			Kind:       KindCounter,
			LabelNames: productLabels,
		},
		{
			Name:       ProductCreationsTotal,
			Help:       "Total number of products created",
			Kind:       KindCounter,
			LabelNames: productLabels,
		},
		{
			Name:       OrderPlacedTotal,
			Help:       "Total number of orders placed",
			Kind:       KindCounter,
			LabelNames: []string{"order_id", "user_id", "user_name", "total_amount", "product_count"},
		},
		{
			Name:       OrderStatusTotal,
			Help:       "Count of orders by status",
			Kind:       KindCounter,
			LabelNames: []string{"order_id", "status"},
		},
		{
			Name:       UserActivityTotal,
			Help:       "Total activities by users",
			Kind:       KindCounter,
			LabelNames: []string{"user_id", "user_name", "activity_type"},
		},
		{
			Name:       CartOperationsTotal,
			Help:       "Cart operations (add/remove)",
			Kind:       KindCounter,
			LabelNames: []string{"user_id", "product_id", "product_name", "operation"},
		},
		{
			Name: ActiveUsers,
			Help: "Number of active users",
			Kind: KindGauge,
		},
		{
			Name:       DBOperationDurationSeconds,
			Help:       "Duration of database operations in seconds",
			Kind:       KindHistogram,
			LabelNames: []string{"operation", "entity"},
			Buckets:    []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		{
			Name: ProductCacheHits,
			Help: "Product cache hits since start",
			Kind: KindGauge,
		},
		{
			Name: ProductCacheMisses,
			Help: "Product cache misses since start",
			Kind: KindGauge,
		},
		{
			Name: ProductCacheHitRatio,
			Help: "Product cache hit ratio",
			Kind: KindGauge,
		},
	}
}

// Recorder translates HTTP and domain events into registry updates. Errors
// are logged and the observation dropped; recording never fails a request.
type Recorder struct {
	registry *Registry
	logger   *slog.Logger
	cfg      *config.MetricsConfig
}

func NewRecorder(registry *Registry, cfg *config.MetricsConfig, logger *slog.Logger) (*Recorder, error) {
	for _, def := range Definitions() {
		if err := registry.Register(def); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", def.Name, err)
		}
	}
	if !cfg.Enabled {
		logger.Info("metrics recording disabled")
	}
	return &Recorder{
		registry: registry,
		logger:   logger,
		cfg:      cfg,
	}, nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	labels := Labels{
		"method":      m.Method,
		"route":       m.Route,
		"status_code": strconv.Itoa(m.StatusCode),
	}
	r.check(HTTPRequestsTotal, r.registry.Inc(HTTPRequestsTotal, labels))
	r.check(HTTPRequestDurationSeconds, r.registry.Observe(HTTPRequestDurationSeconds, labels, m.Duration.Seconds()))
}

func (r *Recorder) RecordProductViewed(e ProductEvent) {
	r.inc(ProductViewsTotal, r.productLabels(e))
}

func (r *Recorder) RecordProductCreated(e ProductEvent) {
	r.inc(ProductCreationsTotal, r.productLabels(e))
}

func (r *Recorder) RecordOrderPlaced(e OrderPlacedEvent) {
	r.inc(OrderPlacedTotal, Labels{
		"order_id":      r.detail(strconv.Itoa(e.OrderID)),
		"user_id":       r.detail(strconv.Itoa(e.UserID)),
		"user_name":     r.detail(e.UserName),
		"total_amount":  r.detail(formatFloat(e.TotalAmount)),
		"product_count": strconv.Itoa(e.ProductCount),
	})
}

func (r *Recorder) RecordOrderStatus(e OrderStatusEvent) {
	r.inc(OrderStatusTotal, Labels{
		"order_id": r.detail(strconv.Itoa(e.OrderID)),
		"status":   e.Status,
	})
}

func (r *Recorder) RecordUserActivity(e UserActivityEvent) {
	r.inc(UserActivityTotal, Labels{
		"user_id":       r.detail(e.UserID),
		"user_name":     r.detail(e.UserName),
		"activity_type": string(e.ActivityType),
	})
}

func (r *Recorder) RecordCartOperation(e CartOperationEvent) {
	r.inc(CartOperationsTotal, Labels{
		"user_id":      r.detail(strconv.Itoa(e.UserID)),
		"product_id":   r.detail(strconv.Itoa(e.ProductID)),
		"product_name": r.detail(e.ProductName),
		"operation":    string(e.Operation),
	})
}

// SetActiveUsers sets the absolute number of active users.
func (r *Recorder) SetActiveUsers(n int) {
	r.set(ActiveUsers, float64(n))
}

func (r *Recorder) ObserveStoreOperation(op StoreOperation, entity Entity, d time.Duration) {
	if !r.cfg.Enabled {
		return
	}
	err := r.registry.Observe(DBOperationDurationSeconds, Labels{
		"operation": string(op),
		"entity":    string(entity),
	}, d.Seconds())
	r.check(DBOperationDurationSeconds, err)
}

// TimeStoreOperation starts a timer and returns the func that observes it:
//
//	defer r.TimeStoreOperation(metrics.OpRead, metrics.EntityProduct)()
func (r *Recorder) TimeStoreOperation(op StoreOperation, entity Entity) func() {
	t := StartTimer()
	return func() {
		r.ObserveStoreOperation(op, entity, t.Elapsed())
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	r.set(ProductCacheHits, float64(m.CacheHits))
	r.set(ProductCacheMisses, float64(m.CacheMisses))
	r.set(ProductCacheHitRatio, m.CacheHitRatio)
}

func (r *Recorder) productLabels(e ProductEvent) Labels {
	return Labels{
		"product_id":   r.detail(strconv.Itoa(e.ProductID)),
		"product_name": r.detail(e.ProductName),
		"category":     e.Category,
		"price":        r.detail(formatFloat(e.Price)),
	}
}

func (r *Recorder) detail(v string) string {
	if !r.cfg.DetailedLabels {
		return Redacted
	}
	return v
}

func (r *Recorder) inc(name string, labels Labels) {
	if !r.cfg.Enabled {
		return
	}
	r.check(name, r.registry.Inc(name, labels))
}

func (r *Recorder) set(name string, v float64) {
	if !r.cfg.Enabled {
		return
	}
	r.check(name, r.registry.Set(name, nil, v))
}

func (r *Recorder) check(name string, err error) {
	if err != nil {
		r.logger.Error("failed to record metric",
			slog.String("metric", name),
			slog.String("error", err.Error()))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
