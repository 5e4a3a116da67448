package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecommerce/internal/domain"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, errUserNotFound, "list users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errUserNotFound)
	}

	u, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, errUserNotFound, "get user")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req domain.CreateUserRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	u, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, errUserNotFound, "create user")
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errUserNotFound)
	}

	var req domain.UpdateUserRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	u, err := h.users.Update(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err, errUserNotFound, "update user")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) DeactivateUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, errUserNotFound)
	}

	if err := h.users.Deactivate(c.Request().Context(), id); err != nil {
		return h.fail(c, err, errUserNotFound, "deactivate user")
	}
	return c.JSON(http.StatusOK, respUserDeactivated)
}
