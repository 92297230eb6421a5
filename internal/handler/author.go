package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
)

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, err := h.catalogSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.mapError("CreateAuthor", err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	authorID := c.Param("authorId")
	author, err := h.catalogSvc.GetAuthor(c.Request().Context(), authorID)
	if err != nil {
		return h.mapError("GetAuthor", err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return h.mapError("ListAuthors", err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	authorID := c.Param("authorId")
	if authorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty authorId"))
	}
	var req model.UpdateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.catalogSvc.UpdateAuthor(c.Request().Context(), authorID, req)
	if err != nil {
		return h.mapError("UpdateAuthor", err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	authorID := c.Param("authorId")
	if err := h.catalogSvc.DeleteAuthor(c.Request().Context(), authorID); err != nil {
		return h.mapError("DeleteAuthor", err)
	}
	return c.NoContent(http.StatusNoContent)
}
