package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.mapError("CreateBook", err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID := c.Param("bookId")
	book, err := h.catalogSvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return h.mapError("GetBook", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.mapError("ListBooks", err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	bookID := c.Param("bookId")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty bookId"))
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), bookID, req)
	if err != nil {
		return h.mapError("UpdateBook", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) Booking(c echo.Context) error {
	bookID := c.Param("bookId")
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.catalogSvc.Booking(c.Request().Context(), bookID, req)
	if err != nil {
		return h.mapError("Booking", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	bookID := c.Param("bookId")
	var req model.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.catalogSvc.CancelBooking(c.Request().Context(), bookID, req)
	if err != nil {
		return h.mapError("CancelBooking", err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookID := c.Param("bookId")
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), bookID); err != nil {
		return h.mapError("DeleteBook", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "Deleted successfully",
		"message": "The book information is not accessible anymore",
	})
}
