package service

import (
	"context"

	"github.com/pkg/errors"
)

// The four operations below are the only place the denormalized
// back-reference lists are mutated. Add is add-if-absent and remove is
// remove-if-present, so every operation tolerates a retry.

func (s *Service) LinkAuthorToBook(ctx context.Context, authorID, bookID string) error {
	author, err := s.repo.GetAuthor(ctx, authorID)
	if err != nil {
		return errors.Wrap(err, "author")
	}
	if author.Writtings.Contains(bookID) {
		return nil
	}
	return s.repo.SetAuthorWrittings(ctx, authorID, append(author.Writtings, bookID))
}

func (s *Service) UnlinkAuthorFromBook(ctx context.Context, authorID, bookID string) error {
	author, err := s.repo.GetAuthor(ctx, authorID)
	if err != nil {
		return errors.Wrap(err, "author")
	}
	writtings, found := author.Writtings.Remove(bookID)
	if !found {
		return nil
	}
	return s.repo.SetAuthorWrittings(ctx, authorID, writtings)
}

func (s *Service) LinkUserToBooking(ctx context.Context, userID, bookID string) error {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "user")
	}
	if user.BookingEvents.Contains(bookID) {
		return nil
	}
	return s.repo.SetUserBookingEvents(ctx, userID, append(user.BookingEvents, bookID))
}

// UnlinkUserFromBooking scans for the id rather than assuming a position,
// since concurrent mutations can shift entries. Absence is not an error.
func (s *Service) UnlinkUserFromBooking(ctx context.Context, userID, bookID string) error {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "user")
	}
	events, found := user.BookingEvents.Remove(bookID)
	if !found {
		return nil
	}
	return s.repo.SetUserBookingEvents(ctx, userID, events)
}
