package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ecommerce/internal/cache"
	"ecommerce/internal/config"
	"ecommerce/internal/handler"
	"ecommerce/internal/metrics"
	"ecommerce/internal/middleware"
	"ecommerce/internal/refcode"
	"ecommerce/internal/repository"
	"ecommerce/internal/service"
	"ecommerce/internal/validation"
)

type testServer struct {
	e   *echo.Echo
	reg *metrics.Registry
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithExporter(t, nil)
}

func newTestServerWithExporter(t *testing.T, exporter handler.MetricsExporter) *testServer {
	t.Helper()
	logger := discardLogger()

	reg := metrics.NewRegistry()
	recorder, err := metrics.NewRecorder(reg, &config.MetricsConfig{Enabled: true, DetailedLabels: true}, logger)
	require.NoError(t, err)
	if exporter == nil {
		exporter = metrics.NewExporter(reg, nil)
	}

	productCache, err := cache.New(16)
	require.NoError(t, err)
	t.Cleanup(productCache.Close)

	codes, err := refcode.New()
	require.NoError(t, err)

	validator, err := validation.New()
	require.NoError(t, err)

	products := service.NewProductService(repository.NewProductRepository(repository.SeedProducts()), productCache, recorder)
	services := handler.Services{
		Products: products,
		Orders:   service.NewOrderService(repository.NewOrderRepository(repository.SeedOrders()), products, codes, recorder),
		Users:    service.NewUserService(repository.NewUserRepository(repository.SeedUsers()), recorder),
		Carts:    service.NewCartService(repository.NewCartRepository(repository.SeedCarts()), products, recorder),
	}

	e := echo.New()
	e.JSONSerializer = handler.SonicSerializer{}
	e.Use(middleware.Metrics(recorder, logger))
	e.Use(echomw.Recover())
	handler.New(services, validator, exporter, "/metrics", logger).Register(e)

	return &testServer{e: e, reg: reg}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) value(name string, labels metrics.Labels) float64 {
	f, ok := s.reg.Snapshot().Family(name)
	if !ok {
		return 0
	}
	series, ok := f.Find(labels)
	if !ok {
		return 0
	}
	return series.Value
}

func (s *testServer) count(name string, labels metrics.Labels) uint64 {
	f, ok := s.reg.Snapshot().Family(name)
	if !ok {
		return 0
	}
	series, ok := f.Find(labels)
	if !ok {
		return 0
	}
	return series.Count
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E-commerce API is running", gjson.Get(rec.Body.String(), "message").String())
	assert.Equal(t, "/metrics", gjson.Get(rec.Body.String(), "endpoints.metrics").String())
	assert.Equal(t, "/api/cart", gjson.Get(rec.Body.String(), "endpoints.cart").String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetProduct_RecordsRequestAndView(t *testing.T) {
	s := newTestServer(t)
	labels := metrics.Labels{"method": "GET", "route": "/api/enhanced-products/:id", "status_code": "200"}
	viewed := metrics.Labels{"product_id": "1", "product_name": "Smartphone", "category": "Electronics", "price": "699.99"}

	rec := s.do(http.MethodGet, "/api/enhanced-products/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Smartphone", gjson.Get(rec.Body.String(), "name").String())
	assert.Equal(t, 699.99, gjson.Get(rec.Body.String(), "price").Float())

	assert.Equal(t, 1.0, s.value(metrics.HTTPRequestsTotal, labels))
	assert.Equal(t, uint64(1), s.count(metrics.HTTPRequestDurationSeconds, labels))
	assert.Equal(t, 1.0, s.value(metrics.ProductViewsTotal, viewed))

	s.do(http.MethodGet, "/api/enhanced-products/1", "")

	assert.Equal(t, 2.0, s.value(metrics.HTTPRequestsTotal, labels))
	assert.Equal(t, uint64(2), s.count(metrics.HTTPRequestDurationSeconds, labels))
	assert.Equal(t, 2.0, s.value(metrics.ProductViewsTotal, viewed))
}

func TestGetProduct_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/enhanced-products/99", "/api/enhanced-products/abc"} {
		rec := s.do(http.MethodGet, target, "")

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String(), target)
	}

	assert.Equal(t, 2.0, s.value(metrics.HTTPRequestsTotal, metrics.Labels{
		"method": "GET", "route": "/api/enhanced-products/:id", "status_code": "404",
	}))
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/does/not/exist", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
	assert.Equal(t, 1.0, s.value(metrics.HTTPRequestsTotal, metrics.Labels{
		"method": "GET", "route": metrics.UnmatchedRoute, "status_code": "404",
	}))
}

func TestCreateProduct(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/enhanced-products",
		`{"name":"Desk","price":250,"stock":3,"category":"Furniture","userId":103}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(6), gjson.Get(rec.Body.String(), "id").Int())
	assert.Equal(t, 1.0, s.value(metrics.UserActivityTotal, metrics.Labels{
		"user_id": "103", "user_name": "admin", "activity_type": "create_product",
	}))
}

func TestCreateProduct_MissingFields(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/enhanced-products", `{"name":"Desk"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "Please provide all required fields", gjson.Get(body, "message").String())
	fields := gjson.Get(body, "errors.#.field").Array()
	require.Len(t, fields, 3)
	assert.Equal(t, "price", fields[0].String())
}

func TestCreateProduct_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/enhanced-products", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/api/enhanced-products/2", `{"price":1199.99}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Laptop", gjson.Get(rec.Body.String(), "name").String())
	assert.Equal(t, 1199.99, gjson.Get(rec.Body.String(), "price").Float())

	rec = s.do(http.MethodDelete, "/api/enhanced-products/2?userId=103&userName=Charlie", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1.0, s.value(metrics.UserActivityTotal, metrics.Labels{
		"user_id": "103", "user_name": "Charlie", "activity_type": "delete_product",
	}))

	rec = s.do(http.MethodGet, "/api/enhanced-products/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrders_PlaceAndLookup(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/enhanced-orders",
		`{"userId":101,"userName":"Alice Smith","products":[{"productId":3,"quantity":1}],"totalAmount":149.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, int64(3), gjson.Get(body, "id").Int())
	assert.Equal(t, "Processing", gjson.Get(body, "status").String())
	assert.Equal(t, "Headphones", gjson.Get(body, "products.0.productName").String())
	ref := gjson.Get(body, "reference").String()
	require.NotEmpty(t, ref)

	rec = s.do(http.MethodGet, "/api/enhanced-orders/ref/"+ref, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gjson.Get(rec.Body.String(), "id").Int())

	rec = s.do(http.MethodPatch, "/api/enhanced-orders/3/status", `{"status":"Shipped","userId":"103"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processing", gjson.Get(rec.Body.String(), "previousStatus").String())
	assert.Equal(t, "Shipped", gjson.Get(rec.Body.String(), "status").String())

	assert.Equal(t, 1.0, s.value(metrics.OrderStatusTotal, metrics.Labels{"order_id": "3", "status": "Processing"}))
	assert.Equal(t, 1.0, s.value(metrics.OrderStatusTotal, metrics.Labels{"order_id": "3", "status": "Shipped"}))
}

func TestOrders_UpdateStatusRequiresStatus(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPatch, "/api/enhanced-orders/1/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", gjson.Get(rec.Body.String(), "errors.0.field").String())
}

func TestUsers(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), gjson.Get(rec.Body.String(), "#").Int())
	assert.False(t, gjson.Get(rec.Body.String(), "0.email").Exists())

	rec = s.do(http.MethodPost, "/api/users", `{"name":"Dana","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email already exists"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/users", `{"name":"Dana","email":"dana@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":104,"name":"Dana","role":"customer","active":true}`, rec.Body.String())
	assert.Equal(t, 4.0, s.value(metrics.ActiveUsers, nil))

	rec = s.do(http.MethodDelete, "/api/users/104", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deactivated successfully"}`, rec.Body.String())
	assert.Equal(t, 3.0, s.value(metrics.ActiveUsers, nil))

	rec = s.do(http.MethodPut, "/api/users/999", `{"name":"Nobody"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/cart/user/150", `{"products":[{"productId":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/cart/user/150", `{"products":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), gjson.Get(rec.Body.String(), "products.#").Int())

	rec = s.do(http.MethodPost, "/api/cart/user/150/product", `{"productId":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), gjson.Get(rec.Body.String(), "products.0.quantity").Int())
	assert.Equal(t, 1.0, s.value(metrics.CartOperationsTotal, metrics.Labels{
		"user_id": "150", "product_id": "5", "product_name": "Running Shoes", "operation": "add",
	}))

	rec = s.do(http.MethodDelete, "/api/cart/user/150/product/5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/cart/user/101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cart cleared successfully"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/cart/user/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Cart not found"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/cart/user/150", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/api/enhanced-products/1", "")

	rec := s.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; version=0.0.4; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/enhanced-products/:id",status_code="200"} 1`)
	assert.Contains(t, body, `ecommerce_product_views_total{product_id="1",product_name="Smartphone",category="Electronics",price="699.99"} 1`)
	assert.Contains(t, body, "# TYPE ecommerce_active_users gauge")
}

type failingExporter struct{}

func (failingExporter) ContentType() string { return "text/plain" }

func (failingExporter) WriteTo(io.Writer) error { return errors.New("render failed") }

func TestMetricsEndpoint_RenderFailure(t *testing.T) {
	s := newTestServerWithExporter(t, failingExporter{})

	rec := s.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to render metrics"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
