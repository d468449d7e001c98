package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

func TestMemoryStore_GetUser(t *testing.T) {
	users, transactions := SeedData()
	s := NewMemoryStore(users, transactions)

	user, err := s.GetUser(context.Background(), "user-maria")
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", user.Name)
	assert.Equal(t, domain.SGD, user.HomeCurrency)

	_, err = s.GetUser(context.Background(), "user-ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_ListTransactionsScopedToUser(t *testing.T) {
	users, transactions := SeedData()
	s := NewMemoryStore(users, transactions)

	for _, u := range users {
		got, err := s.ListTransactions(context.Background(), u.ID)
		require.NoError(t, err)
		require.NotEmpty(t, got, "seed data covers every user")
		for _, tx := range got {
			assert.Equal(t, u.ID, tx.UserID)
		}
	}
}

func TestSeedData_WellFormed(t *testing.T) {
	users, transactions := SeedData()
	require.NotEmpty(t, users)
	require.NotEmpty(t, transactions)

	byID := make(map[string]domain.Transaction, len(transactions))
	for _, tx := range transactions {
		byID[tx.ID] = tx
	}

	for _, tx := range transactions {
		assert.True(t, tx.Type.Valid(), "tx %s type %q", tx.ID, tx.Type)
		assert.True(t, tx.State.Valid(), "tx %s state %q", tx.ID, tx.State)
		assert.True(t, tx.SourceCurrency.Valid(), "tx %s currency %q", tx.ID, tx.SourceCurrency)
		assert.GreaterOrEqual(t, tx.SourceAmount, 0.0, "tx %s amount", tx.ID)

		_, err := time.Parse(time.RFC3339, tx.CreatedAt)
		assert.NoError(t, err, "tx %s createdAt", tx.ID)

		if tx.RelatedTransactionID != nil {
			_, ok := byID[*tx.RelatedTransactionID]
			assert.True(t, ok, "tx %s links to a missing transaction", tx.ID)
		}
	}
}
