package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
)

var bookColumns = []string{
	"id", "title", "isbn", "description", "status", "publisher",
	"published_date", "author_id", "borrower_id", "borrow_date", "return_date",
}

const bookReturning = `returning id, title, isbn, description, status, publisher,
	published_date, author_id, borrower_id, borrow_date, return_date`

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(book.ID, book.Title, book.ISBN, book.Description, book.Status, book.Publisher,
			book.PublishedDate, book.AuthorID, book.BorrowerID, book.BorrowDate, book.ReturnDate).
		Suffix(bookReturning).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	fields := sq.Eq{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.ISBN != nil {
		fields["isbn"] = *req.ISBN
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.AuthorID != nil {
		fields["author_id"] = *req.AuthorID
	}
	if req.Publisher != nil {
		fields["publisher"] = *req.Publisher
	}
	if len(fields) == 0 {
		return r.GetBook(ctx, id)
	}

	q := qb.Update(booksTableName)
	for col, val := range fields {
		q = q.Set(col, val)
	}
	query, args, err := q.
		Where(sq.Eq{"id": id}).
		Suffix(bookReturning).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// BorrowBook moves a book into the borrowed state with a single conditional
// update keyed on the expected prior status, so two concurrent borrowers
// cannot both win. Zero updated rows resolves to ErrNotFound when the book
// is gone and ErrConflict when it is already borrowed.
func (r *repository) BorrowBook(ctx context.Context, id, userID string, borrowDate, returnDate *time.Time) (model.Book, error) {
	now := time.Now().UTC()
	if borrowDate == nil {
		borrowDate = &now
	}

	query, args, err := qb.Update(booksTableName).
		Set("status", model.StatusBorrowed).
		Set("borrower_id", userID).
		Set("borrow_date", borrowDate).
		Set("return_date", returnDate).
		Where(sq.Eq{"id": id, "status": model.StatusAvailable}).
		Suffix(bookReturning).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetBook(ctx, id); getErr != nil {
				return model.Book{}, getErr
			}
			return model.Book{}, errs.ErrConflict
		}
		return model.Book{}, err
	}
	return book, nil
}

// ReleaseBook clears the borrower and resets the status. It is idempotent:
// releasing an available book rewrites the same state.
func (r *repository) ReleaseBook(ctx context.Context, id string, returnDate *time.Time) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("status", model.StatusAvailable).
		Set("borrower_id", nil).
		Set("return_date", returnDate).
		Where(sq.Eq{"id": id}).
		Suffix(bookReturning).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ClearBookAuthor(ctx context.Context, authorID string) error {
	query, args, err := qb.Update(booksTableName).
		Set("author_id", nil).
		Where(sq.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) ReleaseBorrowedBooks(ctx context.Context, userID string) error {
	query, args, err := qb.Update(booksTableName).
		Set("status", model.StatusAvailable).
		Set("borrower_id", nil).
		Where(sq.Eq{"borrower_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
