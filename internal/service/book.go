package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
)

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "book")
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

// UpdateBook is a raw field patch. It does not touch the booking state
// machine or the back-reference lists; booking and cancellation have their
// own entry points.
func (s *Service) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "book")
	}
	return book, nil
}
