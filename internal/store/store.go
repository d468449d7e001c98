// Package store supplies users and their transaction histories to the
// balance engine. Stores are read-only: the engine derives everything
// from the transaction list and never writes back.
package store

import (
	"context"
	"errors"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// Store is the read-only source of users and transactions.
type Store interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// ListTransactions returns all transactions owned by one user, in
	// storage order. Filtering beyond user ownership is boundary logic.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
