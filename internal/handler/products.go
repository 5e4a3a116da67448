package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/domain"
)

func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.products.List(c.Request().Context(), queryActor(c))
	if err != nil {
		return h.fail(c, err, errProductNotFound, "list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errProductNotFound)
	}

	p, err := h.products.Get(c.Request().Context(), id, queryActor(c))
	if err != nil {
		return h.fail(c, err, errProductNotFound, "get product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req domain.CreateProductRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	p, err := h.products.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, errProductNotFound, "create product")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errProductNotFound)
	}

	var req domain.UpdateProductRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	p, err := h.products.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err, errProductNotFound, "update product")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errProductNotFound)
	}

	if err := h.products.Delete(c.Request().Context(), id, queryActor(c)); err != nil {
		return h.fail(c, err, errProductNotFound, "delete product")
	}
	return c.NoContent(http.StatusNoContent)
}
