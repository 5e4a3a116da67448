package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/domain"
	"ecommerce/internal/middleware"
	"ecommerce/internal/service"
	"ecommerce/internal/validation"
)

var (
	errInvalidBody      = map[string]string{"message": "Invalid request body"}
	errServer           = map[string]string{"message": "Server error"}
	errMetricsFailed    = map[string]string{"message": "Failed to render metrics"}
	errRouteNotFound    = map[string]string{"message": "Route not found"}
	errProductNotFound  = map[string]string{"message": "Product not found"}
	errOrderNotFound    = map[string]string{"message": "Order not found"}
	errUserNotFound     = map[string]string{"message": "User not found"}
	errCartNotFound     = map[string]string{"message": "Cart not found"}
	errEmailExists      = map[string]string{"message": "Email already exists"}
	respHealthOK        = map[string]string{"status": "ok"}
	respUserDeactivated = map[string]string{"message": "User deactivated successfully"}
	respCartCleared     = map[string]string{"message": "Cart cleared successfully"}
)

const msgMissingFields = "Please provide all required fields"

type validationResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

type Services struct {
	Products ProductService
	Orders   OrderService
	Users    UserService
	Carts    CartService
}

type Handler struct {
	products    ProductService
	orders      OrderService
	users       UserService
	carts       CartService
	validator   Validator
	exporter    MetricsExporter
	metricsPath string
	logger      *slog.Logger
}

func New(
	services Services,
	validator Validator,
	exporter MetricsExporter,
	metricsPath string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		products:    services.Products,
		orders:      services.Orders,
		users:       services.Users,
		carts:       services.Carts,
		validator:   validator,
		exporter:    exporter,
		metricsPath: metricsPath,
		logger:      logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/health", h.Health)
	e.GET(h.metricsPath, h.Metrics)

	products := e.Group("/api/enhanced-products")
	products.GET("", h.ListProducts)
	products.GET("/:id", h.GetProduct)
	products.POST("", h.CreateProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	orders := e.Group("/api/enhanced-orders")
	orders.GET("", h.ListOrders)
	orders.GET("/:id", h.GetOrder)
	orders.GET("/ref/:code", h.GetOrderByReference)
	orders.POST("", h.PlaceOrder)
	orders.PATCH("/:id/status", h.UpdateOrderStatus)

	users := e.Group("/api/users")
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeactivateUser)

	carts := e.Group("/api/cart/user/:userId")
	carts.GET("", h.GetCart)
	carts.POST("", h.ReplaceCart)
	carts.DELETE("", h.ClearCart)
	carts.POST("/product", h.AddCartItem)
	carts.DELETE("/product/:productId", h.RemoveCartItem)

	e.RouteNotFound("/*", h.NotFound, middleware.MarkUnmatched)
}

type indexResponse struct {
	Message   string         `json:"message"`
	Endpoints indexEndpoints `json:"endpoints"`
}

type indexEndpoints struct {
	Metrics  string `json:"metrics"`
	Health   string `json:"health"`
	Products string `json:"products"`
	Orders   string `json:"orders"`
	Users    string `json:"users"`
	Cart     string `json:"cart"`
}

func (h *Handler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		Message: "E-commerce API is running",
		Endpoints: indexEndpoints{
			Metrics:  h.metricsPath,
			Health:   "/health",
			Products: "/api/enhanced-products",
			Orders:   "/api/enhanced-orders",
			Users:    "/api/users",
			Cart:     "/api/cart",
		},
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// Metrics renders a fresh snapshot. A rendering failure fails this request
// only.
func (h *Handler) Metrics(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.exporter.WriteTo(&buf); err != nil {
		h.logger.Error("failed to render metrics", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errMetricsFailed)
	}
	return c.Blob(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}

func (h *Handler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errRouteNotFound)
}

// bind decodes and validates the request body into req. When it returns false
// the error response has already been written.
func (h *Handler) bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		h.logger.Debug("failed to bind request", slog.String("error", err.Error()))
		return false, c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.Validate(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return false, c.JSON(http.StatusBadRequest, validationResponse{
				Message: msgMissingFields,
				Errors:  verr.Fields,
			})
		}
		return false, c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	return true, nil
}

// fail maps a service error to its response. notFound is the body used for
// service.ErrNotFound.
func (h *Handler) fail(c echo.Context, err error, notFound map[string]string, action string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrEmailExists):
		return c.JSON(http.StatusConflict, errEmailExists)
	}
	h.logger.Error("failed to "+action, slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, errServer)
}

// pathID parses an integer path parameter. Non-numeric ids never match a
// record.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil
}

func queryActor(c echo.Context) domain.Actor {
	return domain.Actor{
		UserID:   domain.ActorID(c.QueryParam("userId")),
		UserName: c.QueryParam("userName"),
	}
}
