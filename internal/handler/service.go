package handler

import (
	"context"

	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id string, req model.UpdateAuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, authorID string) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	Booking(ctx context.Context, bookID string, req model.BookingRequest) (model.Book, error)
	CancelBooking(ctx context.Context, bookID string, req model.CancelBookingRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID string) error

	Register(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

var _ CatalogService = (*service.Service)(nil)
