package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/domain"
)

func (h *Handler) GetCart(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}

	cart, err := h.carts.Get(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, err, errCartNotFound, "get cart")
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) ReplaceCart(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}

	var req domain.ReplaceCartRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	cart, created, err := h.carts.Replace(c.Request().Context(), userID, req)
	if err != nil {
		return h.fail(c, err, errCartNotFound, "replace cart")
	}
	if created {
		return c.JSON(http.StatusCreated, cart)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) AddCartItem(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}

	var req domain.AddCartItemRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	cart, err := h.carts.AddItem(c.Request().Context(), userID, req)
	if err != nil {
		return h.fail(c, err, errCartNotFound, "add cart item")
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}

	cart, err := h.carts.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return h.fail(c, err, errCartNotFound, "remove cart item")
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *Handler) ClearCart(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusNotFound, errCartNotFound)
	}

	if err := h.carts.Clear(c.Request().Context(), userID); err != nil {
		return h.fail(c, err, errCartNotFound, "clear cart")
	}
	return c.JSON(http.StatusOK, respCartCleared)
}
