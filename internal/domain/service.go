package domain

import "context"

// TransactionManager runs a function within a storage transaction so that
// multi-record mutations (progress update + streak advance) commit or roll
// back as a unit. The memory store satisfies this with its store-wide lock.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
