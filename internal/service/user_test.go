package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
	"github.com/riofed5/Book-reservation/pkg/auth"
)

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the raw password", func(t *testing.T) {
		svc, repo, _ := newService(t)

		var created model.User
		repo.EXPECT().CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
				created = u
				return u, nil
			})

		user, err := svc.Register(ctx, model.CreateUserRequest{
			FirstName: "Ada",
			LastName:  "L",
			Email:     "ada@example.com",
			Password:  "s3cret!",
		})
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.NotEqual(t, "s3cret!", created.Password)
		require.NoError(t,
			bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret!")))
		require.NotNil(t, created.BookingEvents)
		require.Empty(t, created.BookingEvents)
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).
			Return(model.User{}, errs.ErrConflict)

		_, err := svc.Register(ctx, model.CreateUserRequest{
			FirstName: "Ada",
			LastName:  "L",
			Email:     "ada@example.com",
			Password:  "s3cret!",
		})
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	auth.JWTKey = []byte("test-key")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: "u1", Email: "ada@example.com", Password: string(hash), IsAdmin: true}

	t.Run("valid credentials mint a token", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(stored, nil)

		resp, err := svc.Login(ctx, model.AuthRequest{Email: "ada@example.com", Password: "s3cret!"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, "u1", resp.User.ID)
		require.Greater(t, resp.ExpiresIn, 0)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(stored, nil)

		_, err := svc.Login(ctx, model.AuthRequest{Email: "ada@example.com", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	})

	t.Run("unknown email reads the same as a wrong password", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").
			Return(model.User{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, model.AuthRequest{Email: "ghost@example.com", Password: "s3cret!"})
		require.ErrorIs(t, err, errs.ErrBadCredentials)
		require.NotErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rehashes a changed password", func(t *testing.T) {
		svc, repo, _ := newService(t)

		var patched model.UpdateUserRequest
		repo.EXPECT().UpdateUser(ctx, "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req model.UpdateUserRequest) (model.User, error) {
				patched = req
				return model.User{ID: "u1"}, nil
			})

		_, err := svc.UpdateUser(ctx, "u1", model.UpdateUserRequest{Password: strPtr("newpass")})
		require.NoError(t, err)
		require.NotNil(t, patched.Password)
		require.NotEqual(t, "newpass", *patched.Password)
		require.NoError(t,
			bcrypt.CompareHashAndPassword([]byte(*patched.Password), []byte("newpass")))
	})

	t.Run("name-only patch leaves the password untouched", func(t *testing.T) {
		svc, repo, _ := newService(t)
		req := model.UpdateUserRequest{FirstName: strPtr("Ada")}
		repo.EXPECT().UpdateUser(ctx, "u1", req).Return(model.User{ID: "u1"}, nil)

		_, err := svc.UpdateUser(ctx, "u1", req)
		require.NoError(t, err)
	})
}
