package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/pkg/kafka"
)

// Booking moves a book from available to borrowed. The transition itself is
// a conditional single-row update keyed on the prior status, so an already
// borrowed book yields ErrConflict and two racing borrowers cannot both win.
// The borrower's back-reference is linked after the transition; a failure
// there leaves the book borrowed and the link retryable.
func (s *Service) Booking(ctx context.Context, bookID string, req model.BookingRequest) (model.Book, error) {
	if _, err := s.repo.GetUser(ctx, req.BorrowerID); err != nil {
		return model.Book{}, errors.Wrap(err, "user")
	}

	book, err := s.repo.BorrowBook(ctx, bookID, req.BorrowerID, req.BorrowDate, req.ReturnDate)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "book")
	}

	if err := s.LinkUserToBooking(ctx, req.BorrowerID, bookID); err != nil {
		return model.Book{}, err
	}

	s.events.LendingEvent(ctx, kafka.LendingEvent{
		BookID:    bookID,
		UserID:    req.BorrowerID,
		Event:     kafka.EventBooked,
		Timestamp: time.Now().UTC(),
	})
	return book, nil
}

// CancelBooking unlinks the borrower first and patches the book afterwards,
// so a failure mid-way leaves the book still borrowed and the cancellation
// retryable. Both steps are idempotent.
func (s *Service) CancelBooking(ctx context.Context, bookID string, req model.CancelBookingRequest) (model.Book, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Book{}, errors.Wrap(err, "book")
	}
	if _, err := s.repo.GetUser(ctx, req.BorrowerID); err != nil {
		return model.Book{}, errors.Wrap(err, "user")
	}

	if err := s.UnlinkUserFromBooking(ctx, req.BorrowerID, bookID); err != nil {
		return model.Book{}, err
	}

	book, err := s.repo.ReleaseBook(ctx, bookID, req.ReturnDate)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "book")
	}

	s.events.LendingEvent(ctx, kafka.LendingEvent{
		BookID:    bookID,
		UserID:    req.BorrowerID,
		Event:     kafka.EventReturned,
		Timestamp: time.Now().UTC(),
	})
	return book, nil
}
