package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
	mock_repository "github.com/riofed5/Book-reservation/internal/repository/mocks"
	"github.com/riofed5/Book-reservation/internal/service"
	"github.com/riofed5/Book-reservation/pkg/kafka"
)

// eventsRecorder captures the lending audit stream in tests.
type eventsRecorder struct {
	events []kafka.LendingEvent
}

func (e *eventsRecorder) LendingEvent(_ context.Context, ev kafka.LendingEvent) {
	e.events = append(e.events, ev)
}

func newService(t *testing.T) (*service.Service, *mock_repository.MockRepository, *eventsRecorder) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := mock_repository.NewMockRepository(c)
	events := &eventsRecorder{}
	return service.NewService(repo, events, zap.NewExample().Named("test")), repo, events
}

func TestService_LinkAuthorToBook(t *testing.T) {
	ctx := context.Background()

	t.Run("appends when absent", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAuthor(ctx, "a1").
			Return(model.Author{ID: "a1", Name: "Jane", Writtings: model.BookIDs{"b1"}}, nil)
		repo.EXPECT().SetAuthorWrittings(ctx, "a1", model.BookIDs{"b1", "b2"}).
			Return(nil)

		require.NoError(t, svc.LinkAuthorToBook(ctx, "a1", "b2"))
	})

	t.Run("idempotent when already linked", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAuthor(ctx, "a1").
			Return(model.Author{ID: "a1", Name: "Jane", Writtings: model.BookIDs{"b1"}}, nil)

		require.NoError(t, svc.LinkAuthorToBook(ctx, "a1", "b1"))
	})

	t.Run("author not found", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAuthor(ctx, "missing").Return(model.Author{}, errs.ErrNotFound)

		err := svc.LinkAuthorToBook(ctx, "missing", "b1")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_UnlinkAuthorFromBook(t *testing.T) {
	ctx := context.Background()

	t.Run("removes first occurrence", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAuthor(ctx, "a1").
			Return(model.Author{ID: "a1", Writtings: model.BookIDs{"b1", "b2", "b3"}}, nil)
		repo.EXPECT().SetAuthorWrittings(ctx, "a1", model.BookIDs{"b1", "b3"}).
			Return(nil)

		require.NoError(t, svc.UnlinkAuthorFromBook(ctx, "a1", "b2"))
	})

	t.Run("no-op when absent", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetAuthor(ctx, "a1").
			Return(model.Author{ID: "a1", Writtings: model.BookIDs{"b1"}}, nil)

		require.NoError(t, svc.UnlinkAuthorFromBook(ctx, "a1", "b9"))
	})
}

func TestService_LinkUserToBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("appends exactly once", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{}}, nil)
		repo.EXPECT().SetUserBookingEvents(ctx, "u1", model.BookIDs{"b1"}).
			Return(nil)

		require.NoError(t, svc.LinkUserToBooking(ctx, "u1", "b1"))
	})

	t.Run("user not found", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUser(ctx, "missing").Return(model.User{}, errs.ErrNotFound)

		require.ErrorIs(t, svc.LinkUserToBooking(ctx, "missing", "b1"), errs.ErrNotFound)
	})
}

func TestService_UnlinkUserFromBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("removes by equality, not position", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{"b2", "b1"}}, nil)
		repo.EXPECT().SetUserBookingEvents(ctx, "u1", model.BookIDs{"b2"}).
			Return(nil)

		require.NoError(t, svc.UnlinkUserFromBooking(ctx, "u1", "b1"))
	})

	t.Run("unlinking a never-borrowed book is a no-op", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUser(ctx, "u1").
			Return(model.User{ID: "u1", BookingEvents: model.BookIDs{"b2"}}, nil)

		require.NoError(t, svc.UnlinkUserFromBooking(ctx, "u1", "b1"))
	})
}
