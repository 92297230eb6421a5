package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/pkg/kafka"
)

func strPtr(s string) *string { return &s }

func TestService_Booking(t *testing.T) {
	ctx := context.Background()

	t.Run("borrow links the user and emits an event", func(t *testing.T) {
		svc, repo, events := newService(t)
		borrowed := model.Book{ID: "b1", Title: "T", Status: model.StatusBorrowed, BorrowerID: strPtr("u1")}

		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{}}, nil).
			Times(2)
		repo.EXPECT().BorrowBook(ctx, "b1", "u1", gomock.Nil(), gomock.Nil()).
			Return(borrowed, nil)
		repo.EXPECT().SetUserBookingEvents(ctx, "u1", model.BookIDs{"b1"}).
			Return(nil)

		book, err := svc.Booking(ctx, "b1", model.BookingRequest{BorrowerID: "u1"})
		require.NoError(t, err)
		require.Equal(t, model.StatusBorrowed, book.Status)
		require.Equal(t, "u1", *book.BorrowerID)

		require.Len(t, events.events, 1)
		require.Equal(t, kafka.EventBooked, events.events[0].Event)
		require.Equal(t, "b1", events.events[0].BookID)
	})

	t.Run("booking twice never duplicates the back-reference", func(t *testing.T) {
		svc, repo, _ := newService(t)
		borrowed := model.Book{ID: "b1", Status: model.StatusBorrowed, BorrowerID: strPtr("u1")}

		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{"b1"}}, nil).
			Times(2)
		repo.EXPECT().BorrowBook(ctx, "b1", "u1", gomock.Nil(), gomock.Nil()).
			Return(borrowed, nil)
		// no SetUserBookingEvents: b1 is already present

		_, err := svc.Booking(ctx, "b1", model.BookingRequest{BorrowerID: "u1"})
		require.NoError(t, err)
	})

	t.Run("already borrowed is a conflict", func(t *testing.T) {
		svc, repo, events := newService(t)
		repo.EXPECT().GetUser(ctx, "u2").
			Return(model.User{ID: "u2"}, nil)
		repo.EXPECT().BorrowBook(ctx, "b1", "u2", gomock.Nil(), gomock.Nil()).
			Return(model.Book{}, errs.ErrConflict)

		_, err := svc.Booking(ctx, "b1", model.BookingRequest{BorrowerID: "u2"})
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Empty(t, events.events)
	})

	t.Run("unknown borrower", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUser(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Booking(ctx, "b1", model.BookingRequest{BorrowerID: "ghost"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel unlinks before patching the book", func(t *testing.T) {
		svc, repo, events := newService(t)
		released := model.Book{ID: "b1", Status: model.StatusAvailable}

		gomock.InOrder(
			repo.EXPECT().GetBook(ctx, "b1").
				Return(model.Book{ID: "b1", Status: model.StatusBorrowed, BorrowerID: strPtr("u1")}, nil),
			repo.EXPECT().GetUser(ctx, "u1").
				Return(model.User{ID: "u1", BookingEvents: model.BookIDs{"b1"}}, nil),
			repo.EXPECT().GetUser(ctx, "u1").
				Return(model.User{ID: "u1", BookingEvents: model.BookIDs{"b1"}}, nil),
			repo.EXPECT().SetUserBookingEvents(ctx, "u1", model.BookIDs{}).
				Return(nil),
			repo.EXPECT().ReleaseBook(ctx, "b1", gomock.Nil()).
				Return(released, nil),
		)

		book, err := svc.CancelBooking(ctx, "b1", model.CancelBookingRequest{BorrowerID: "u1"})
		require.NoError(t, err)
		require.Equal(t, model.StatusAvailable, book.Status)
		require.Nil(t, book.BorrowerID)

		require.Len(t, events.events, 1)
		require.Equal(t, kafka.EventReturned, events.events[0].Event)
	})

	t.Run("cancel succeeds even when the id was already absent", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetBook(ctx, "b1").
			Return(model.Book{ID: "b1", Status: model.StatusBorrowed}, nil)
		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{}}, nil).
			Times(2)
		repo.EXPECT().ReleaseBook(ctx, "b1", gomock.Nil()).
			Return(model.Book{ID: "b1", Status: model.StatusAvailable}, nil)

		_, err := svc.CancelBooking(ctx, "b1", model.CancelBookingRequest{BorrowerID: "u1"})
		require.NoError(t, err)
	})

	t.Run("unknown book", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetBook(ctx, "ghost").Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.CancelBooking(ctx, "ghost", model.CancelBookingRequest{BorrowerID: "u1"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
