package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=store.go -destination=store_mock.go -package=core

// AccountStore is the persistence contract the services run against.
// Commit is the single coordination primitive: it writes the full
// mutable field set only if the stored version still equals
// account.Version, advancing the version on success. A store only
// needs single-row conditional updates to satisfy it.
type AccountStore interface {
	Get(ctx context.Context, id int64) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	Commit(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Account, error)
}
