package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Repository is the entity store: point lookups, filtered scans and
// single-row atomic updates. A row is the only atomic unit; nothing here
// spans documents.
type Repository interface {
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, id string, req model.UpdateAuthorRequest) (model.Author, error)
	SetAuthorWrittings(ctx context.Context, id string, writtings model.BookIDs) error
	DeleteAuthor(ctx context.Context, id string) error

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	BorrowBook(ctx context.Context, id, userID string, borrowDate, returnDate *time.Time) (model.Book, error)
	ReleaseBook(ctx context.Context, id string, returnDate *time.Time) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ClearBookAuthor(ctx context.Context, authorID string) error
	ReleaseBorrowedBooks(ctx context.Context, userID string) error

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id string, req model.UpdateUserRequest) (model.User, error)
	SetUserBookingEvents(ctx context.Context, id string, events model.BookIDs) error
	DeleteUser(ctx context.Context, id string) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName = `authors`
	booksTableName   = `books`
	usersTableName   = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
