package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTKey signs and verifies access tokens. Set once at startup from config.
var JWTKey []byte

const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// NewToken mints an HS256 access token for the user.
func NewToken(userID, email string, isAdmin bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(TokenTTL)
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

type Identity struct {
	UserID  string
	IsAdmin bool
}

type contextKey int

const identityKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
