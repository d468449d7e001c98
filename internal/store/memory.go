package store

import (
	"context"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// MemoryStore serves a fixed in-memory dataset. It is the default
// backend: the snapshot is immutable after construction, so concurrent
// reads need no locking.
type MemoryStore struct {
	users        []domain.User
	transactions []domain.Transaction
}

func NewMemoryStore(users []domain.User, transactions []domain.Transaction) *MemoryStore {
	return &MemoryStore{users: users, transactions: transactions}
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, userID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}
