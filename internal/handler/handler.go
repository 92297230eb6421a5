package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/errs"
	md "github.com/riofed5/Book-reservation/pkg/middleware"
	"github.com/riofed5/Book-reservation/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	authors := api.Group("/authors")
	authors.GET("", h.ListAuthors)
	authors.GET("/:authorId", h.GetAuthor)
	authors.POST("", h.CreateAuthor, md.JwtAuthentication, md.AdminOnly)
	authors.PUT("/:authorId", h.UpdateAuthor, md.JwtAuthentication, md.AdminOnly)
	authors.DELETE("/:authorId", h.DeleteAuthor, md.JwtAuthentication, md.AdminOnly)

	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.GET("/:bookId", h.GetBook)
	books.POST("", h.CreateBook, md.JwtAuthentication, md.AdminOnly)
	books.PUT("/booking/:bookId", h.Booking, md.JwtAuthentication)
	books.PUT("/cancel/:bookId", h.CancelBooking, md.JwtAuthentication)
	books.PUT("/:bookId", h.UpdateBook, md.JwtAuthentication, md.AdminOnly)
	books.DELETE("/:bookId", h.DeleteBook, md.JwtAuthentication, md.AdminOnly)

	users := api.Group("/users")
	users.POST("", h.Register)
	users.POST("/login", h.Login)
	users.GET("", h.ListUsers, md.JwtAuthentication, md.AdminOnly)
	users.GET("/:userId", h.GetUser, md.JwtAuthentication)
	users.PUT("/:userId", h.UpdateUser, md.JwtAuthentication)
	users.DELETE("/:userId", h.DeleteUser, md.JwtAuthentication, md.AdminOnly)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// mapError translates the service error taxonomy to HTTP statuses. Store
// failures stay opaque: the cause is logged, never echoed to the client.
func (h *Handler) mapError(op string, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrBadCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		h.log.Error(op, zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
