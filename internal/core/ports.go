package core

import (
	"context"

	"minitwit/internal/repository"
	tokenIssuer "minitwit/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	Follow(ctx context.Context, whoID, whomID uint) error
	Unfollow(ctx context.Context, whoID, whomID uint) error
	GetFollows(ctx context.Context, whoID uint, limit int) ([]string, error)
	CreateMessage(ctx context.Context, msg repository.Message) (repository.Message, error)
	GetMessages(ctx context.Context, limit int) ([]repository.Message, error)
	GetUserMessages(ctx context.Context, authorID uint, limit int) ([]repository.Message, error)
	GetLatest(ctx context.Context) (int, error)
	SetLatest(ctx context.Context, value int) error
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
