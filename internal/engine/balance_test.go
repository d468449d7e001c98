package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

func TestAggregate_EmptyTransactionList(t *testing.T) {
	summary := Aggregate(nil, domain.USD)
	assert.Empty(t, summary.Balances)
	assert.Equal(t, 0.0, summary.TotalInHomeCurrency)
	assert.Equal(t, domain.USD, summary.HomeCurrency)
}

func TestAggregate_RuleTable(t *testing.T) {
	testCases := []struct {
		name          string
		transactions  []domain.Transaction
		currency      domain.Currency
		wantAvailable float64
		wantPending   float64
	}{
		{
			name: "completed deposit credits available",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
			},
			currency: domain.SGD, wantAvailable: 1000, wantPending: 0,
		},
		{
			name: "processing deposit credits pending",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateProcessing, domain.SGD, 500),
			},
			currency: domain.SGD, wantAvailable: 0, wantPending: 500,
		},
		{
			name: "initiated deposit credits pending",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateInitiated, domain.SGD, 500),
			},
			currency: domain.SGD, wantAvailable: 0, wantPending: 500,
		},
		{
			name: "completed send debits available",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeSend, domain.StateCompleted, domain.SGD, 300),
			},
			currency: domain.SGD, wantAvailable: 700, wantPending: 0,
		},
		{
			name: "processing send holds funds as pending",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeSend, domain.StateProcessing, domain.SGD, 400),
			},
			currency: domain.SGD, wantAvailable: 600, wantPending: 400,
		},
		{
			name: "initiated send holds funds as pending",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeSend, domain.StateInitiated, domain.SGD, 200),
			},
			currency: domain.SGD, wantAvailable: 800, wantPending: 200,
		},
		{
			name: "refunded send keeps its debit",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeSend, domain.StateRefunded, domain.SGD, 250),
			},
			currency: domain.SGD, wantAvailable: 750, wantPending: 0,
		},
		{
			name: "completed fee debits available",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeFee, domain.StateCompleted, domain.SGD, 5),
			},
			currency: domain.SGD, wantAvailable: 995, wantPending: 0,
		},
		{
			name: "processing fee is a no-op",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeFee, domain.StateProcessing, domain.SGD, 5),
			},
			currency: domain.SGD, wantAvailable: 1000, wantPending: 0,
		},
		{
			name: "completed refund credits available",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeSend, domain.StateCompleted, domain.SGD, 300),
				makeTx(domain.TypeRefund, domain.StateCompleted, domain.SGD, 300),
			},
			currency: domain.SGD, wantAvailable: 1000, wantPending: 0,
		},
		{
			name: "refunded deposit falls through as a no-op",
			transactions: []domain.Transaction{
				makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
				makeTx(domain.TypeDeposit, domain.StateRefunded, domain.SGD, 400),
			},
			currency: domain.SGD, wantAvailable: 1000, wantPending: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := Aggregate(tc.transactions, domain.SGD)
			b := findBalance(t, summary, tc.currency)
			assert.Equal(t, tc.wantAvailable, b.Available, "available")
			assert.Equal(t, tc.wantPending, b.Pending, "pending")
			assert.Equal(t, tc.wantAvailable+tc.wantPending, b.Total, "total")
		})
	}
}

func TestAggregate_FailedTransactionsHaveNoEffect(t *testing.T) {
	for _, txType := range []domain.TransactionType{
		domain.TypeSend, domain.TypeReceive, domain.TypeConversion,
		domain.TypeFee, domain.TypeRefund, domain.TypeDeposit,
	} {
		transactions := []domain.Transaction{
			makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
			withDest(makeTx(txType, domain.StateFailed, domain.SGD, 999), domain.THB, 999),
		}
		summary := Aggregate(transactions, domain.SGD)
		require.Len(t, summary.Balances, 1, "failed %s must not touch any balance", txType)
		assert.Equal(t, 1000.0, findBalance(t, summary, domain.SGD).Available, "failed %s", txType)
	}
}

func TestAggregate_ReceiveCreditsDestinationCurrency(t *testing.T) {
	transactions := []domain.Transaction{
		withDest(makeTx(domain.TypeReceive, domain.StateCompleted, domain.PHP, 10000), domain.SGD, 260),
	}
	summary := Aggregate(transactions, domain.SGD)
	require.Len(t, summary.Balances, 1, "receive only touches the destination leg")
	b := findBalance(t, summary, domain.SGD)
	assert.Equal(t, 260.0, b.Available)
}

func TestAggregate_ProcessingReceiveCreditsPending(t *testing.T) {
	transactions := []domain.Transaction{
		withDest(makeTx(domain.TypeReceive, domain.StateProcessing, domain.PHP, 10000), domain.SGD, 260),
	}
	summary := Aggregate(transactions, domain.SGD)
	b := findBalance(t, summary, domain.SGD)
	assert.Equal(t, 0.0, b.Available)
	assert.Equal(t, 260.0, b.Pending)
}

func TestAggregate_ReceiveWithoutDestinationIsNoop(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeReceive, domain.StateCompleted, domain.PHP, 10000),
	}
	summary := Aggregate(transactions, domain.SGD)
	assert.Empty(t, summary.Balances)
}

func TestAggregate_ConversionMovesAcrossCurrencies(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
		withDest(makeTx(domain.TypeConversion, domain.StateCompleted, domain.SGD, 100), domain.THB, 2640),
	}
	summary := Aggregate(transactions, domain.SGD)
	require.Len(t, summary.Balances, 2)
	assert.Equal(t, 900.0, findBalance(t, summary, domain.SGD).Available)
	assert.Equal(t, 2640.0, findBalance(t, summary, domain.THB).Available)
}

func TestAggregate_RefundedSendThenRefundRestoresViaTwoEntries(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
		makeTx(domain.TypeSend, domain.StateRefunded, domain.SGD, 600),
		makeTx(domain.TypeRefund, domain.StateCompleted, domain.SGD, 600),
	}
	summary := Aggregate(transactions, domain.SGD)
	assert.Equal(t, 1000.0, findBalance(t, summary, domain.SGD).Available)
}

func TestAggregate_RoundsAfterExactSummation(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 100.555),
		makeTx(domain.TypeFee, domain.StateCompleted, domain.SGD, 0.111),
	}
	summary := Aggregate(transactions, domain.SGD)
	assert.Equal(t, 100.44, findBalance(t, summary, domain.SGD).Available)
}

func TestAggregate_TotalInvariantHolds(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1234.567),
		makeTx(domain.TypeSend, domain.StateProcessing, domain.SGD, 333.333),
		makeTx(domain.TypeDeposit, domain.StateProcessing, domain.THB, 0.005),
		withDest(makeTx(domain.TypeConversion, domain.StateCompleted, domain.SGD, 50.505), domain.PHP, 2101.01),
		makeTx(domain.TypeFee, domain.StateCompleted, domain.PHP, 10.101),
	}
	summary := Aggregate(transactions, domain.USD)
	require.NotEmpty(t, summary.Balances)
	for _, b := range summary.Balances {
		want := math.Round((b.Available+b.Pending)*100) / 100
		assert.Equal(t, want, b.Total, "total invariant for %s", b.Currency)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 1000),
		makeTx(domain.TypeSend, domain.StateProcessing, domain.SGD, 400),
		withDest(makeTx(domain.TypeConversion, domain.StateCompleted, domain.SGD, 100), domain.THB, 2642.86),
		makeTx(domain.TypeFee, domain.StateCompleted, domain.SGD, 8.5),
	}
	reversed := make([]domain.Transaction, len(transactions))
	for i, tx := range transactions {
		reversed[len(transactions)-1-i] = tx
	}

	a := Aggregate(transactions, domain.USD)
	b := Aggregate(reversed, domain.USD)

	assert.Equal(t, a.TotalInHomeCurrency, b.TotalInHomeCurrency)
	require.Equal(t, len(a.Balances), len(b.Balances))
	for _, ab := range a.Balances {
		assert.Equal(t, ab, findBalance(t, b, ab.Currency))
	}
}

func TestAggregate_TotalInHomeCurrency(t *testing.T) {
	transactions := []domain.Transaction{
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.SGD, 100),
		makeTx(domain.TypeDeposit, domain.StateCompleted, domain.USD, 100),
	}

	// Home USD: 100 SGD -> 74 USD, plus 100 USD.
	summary := Aggregate(transactions, domain.USD)
	assert.Equal(t, 174.0, summary.TotalInHomeCurrency)

	// Home SGD: 100 USD -> 135.14 SGD, plus 100 SGD.
	summary = Aggregate(transactions, domain.SGD)
	assert.Equal(t, 235.14, summary.TotalInHomeCurrency)
}
