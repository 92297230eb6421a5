package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/pkg/auth"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.catalogSvc.Register(c.Request().Context(), req)
	if err != nil {
		return h.mapError("Register", err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.catalogSvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.mapError("Login", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c echo.Context) error {
	userID := c.Param("userId")
	user, err := h.catalogSvc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return h.mapError("GetUser", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.catalogSvc.ListUsers(c.Request().Context())
	if err != nil {
		return h.mapError("ListUsers", err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser lets a user patch their own record; admins may patch anyone.
func (h *Handler) UpdateUser(c echo.Context) error {
	userID := c.Param("userId")
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No auth context")
	}
	if !id.IsAdmin && id.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not your account")
	}

	var req model.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.catalogSvc.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		return h.mapError("UpdateUser", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	userID := c.Param("userId")
	if err := h.catalogSvc.DeleteUser(c.Request().Context(), userID); err != nil {
		return h.mapError("DeleteUser", err)
	}
	return c.NoContent(http.StatusNoContent)
}
