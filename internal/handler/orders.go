package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/domain"
)

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context(), queryActor(c))
	if err != nil {
		return h.fail(c, err, errOrderNotFound, "list orders")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errOrderNotFound)
	}

	o, err := h.orders.Get(c.Request().Context(), id, queryActor(c))
	if err != nil {
		return h.fail(c, err, errOrderNotFound, "get order")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) GetOrderByReference(c echo.Context) error {
	o, err := h.orders.GetByReference(c.Request().Context(), c.Param("code"), queryActor(c))
	if err != nil {
		return h.fail(c, err, errOrderNotFound, "get order by reference")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) PlaceOrder(c echo.Context) error {
	var req domain.CreateOrderRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	o, err := h.orders.Place(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, errOrderNotFound, "place order")
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errOrderNotFound)
	}

	var req domain.UpdateOrderStatusRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	change, err := h.orders.UpdateStatus(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err, errOrderNotFound, "update order status")
	}
	return c.JSON(http.StatusOK, change)
}
