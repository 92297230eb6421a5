package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/riofed5/Book-reservation/internal/model"
)

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, model.Author{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Writtings: model.BookIDs{},
	})
}

func (s *Service) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.Author{}, errors.Wrap(err, "author")
	}
	return author, nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) UpdateAuthor(ctx context.Context, id string, req model.UpdateAuthorRequest) (model.Author, error) {
	author, err := s.repo.UpdateAuthor(ctx, id, req)
	if err != nil {
		return model.Author{}, errors.Wrap(err, "author")
	}
	return author, nil
}
