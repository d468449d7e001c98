package engine

import (
	"fmt"
	"testing"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

var txSeq int

func makeTx(txType domain.TransactionType, state domain.TransactionState, c domain.Currency, amount float64) domain.Transaction {
	txSeq++
	return domain.Transaction{
		ID:             fmt.Sprintf("tx-%03d", txSeq),
		UserID:         "user-test",
		Type:           txType,
		State:          state,
		SourceCurrency: c,
		SourceAmount:   amount,
		Description:    "test",
		CreatedAt:      "2025-01-01T00:00:00Z",
		UpdatedAt:      "2025-01-01T00:00:00Z",
	}
}

func withDest(tx domain.Transaction, c domain.Currency, amount float64) domain.Transaction {
	tx.DestinationCurrency = &c
	tx.DestinationAmount = &amount
	return tx
}

func at(tx domain.Transaction, createdAt string) domain.Transaction {
	tx.CreatedAt = createdAt
	return tx
}

func findBalance(t *testing.T, summary domain.BalanceSummary, c domain.Currency) domain.CurrencyBalance {
	t.Helper()
	for _, b := range summary.Balances {
		if b.Currency == c {
			return b
		}
	}
	t.Fatalf("no balance for %s in %+v", c, summary.Balances)
	return domain.CurrencyBalance{}
}
