package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/pkg/auth"
)

func (s *Service) Register(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}

	return s.repo.CreateUser(ctx, model.User{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      string(hash),
		BookingEvents: model.BookIDs{},
	})
}

func (s *Service) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrBadCredentials
		}
		return model.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrBadCredentials
	}

	token, expiresAt, err := auth.NewToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}

	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Unix()),
		User:        user,
	}, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, errors.Wrap(err, "user")
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id string, req model.UpdateUserRequest) (model.User, error) {
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, errors.Wrap(err, "hash password")
		}
		hashed := string(hash)
		req.Password = &hashed
	}

	user, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return model.User{}, errors.Wrap(err, "user")
	}
	return user, nil
}
