package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
)

// Compound operations are ordered sequences of single-row steps. Cleanup
// always precedes the terminal delete, so a failure mid-cleanup leaves the
// record discoverable and the operation retryable. Applied steps are never
// rolled back; the caller sees the first error.

// CreateBook links the author before the book row exists: a missing author
// aborts the whole operation and never leaves an orphan book behind.
func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book := model.Book{
		ID:            uuid.NewString(),
		Title:         req.Title,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Status:        model.StatusAvailable,
		Publisher:     req.Publisher,
		PublishedDate: time.Now().UTC(),
		AuthorID:      req.AuthorID,
	}

	if req.AuthorID != nil {
		if err := s.LinkAuthorToBook(ctx, *req.AuthorID, book.ID); err != nil {
			return model.Book{}, err
		}
	}

	return s.repo.CreateBook(ctx, book)
}

// DeleteBook unlinks the borrower, then the author, then removes the row.
func (s *Service) DeleteBook(ctx context.Context, bookID string) error {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return errors.Wrap(err, "book")
	}

	if book.BorrowerID != nil {
		if err := s.UnlinkUserFromBooking(ctx, *book.BorrowerID, bookID); err != nil {
			return err
		}
	}
	if book.AuthorID != nil {
		if err := s.UnlinkAuthorFromBook(ctx, *book.AuthorID, bookID); err != nil {
			return err
		}
	}

	return s.repo.DeleteBook(ctx, bookID)
}

// DeleteAuthor orphans the author's books (bulk author_id clear) before
// removing the author. Books outlive their author link.
func (s *Service) DeleteAuthor(ctx context.Context, authorID string) error {
	if _, err := s.repo.GetAuthor(ctx, authorID); err != nil {
		return errors.Wrap(err, "author")
	}
	if err := s.repo.ClearBookAuthor(ctx, authorID); err != nil {
		return err
	}
	return s.repo.DeleteAuthor(ctx, authorID)
}

// DeleteUser releases every book the user still borrows before removing
// the user record.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return errors.Wrap(err, "user")
	}
	if err := s.repo.ReleaseBorrowedBooks(ctx, userID); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, userID)
}
