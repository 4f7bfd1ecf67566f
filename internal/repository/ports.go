package repository

import (
	"context"

	"minitwit/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Seed(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindAll(ctx context.Context, dest any, opts db.FindOptions) error
	Create(ctx context.Context, record any) error
	CreateIfAbsent(ctx context.Context, record any) (bool, error)
	Upsert(ctx context.Context, record any) error
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
	CountWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
