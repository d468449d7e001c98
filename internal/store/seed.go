package store

import (
	"github.com/google/uuid"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// SeedData builds the demo dataset: three users across the corridor and
// a transaction history that exercises every state the engine scores.
// Identifiers are generated per process; the refund keeps its link to
// the send it reverses.
func SeedData() ([]domain.User, []domain.Transaction) {
	users := []domain.User{
		{ID: "user-maria", Name: "Maria Santos", Email: "maria@example.com", HomeCurrency: domain.SGD, Country: "Singapore"},
		{ID: "user-ahmad", Name: "Ahmad Rahman", Email: "ahmad@example.com", HomeCurrency: domain.MYR, Country: "Malaysia"},
		{ID: "user-liza", Name: "Liza Reyes", Email: "liza@example.com", HomeCurrency: domain.PHP, Country: "Philippines"},
	}

	refundedSendID := uuid.NewString()

	transactions := []domain.Transaction{
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeDeposit, State: domain.StateCompleted,
			SourceCurrency: domain.SGD, SourceAmount: 5000,
			Description: "Salary top-up",
			CreatedAt:   "2025-01-05T09:00:00Z", UpdatedAt: "2025-01-05T09:00:05Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeSend, State: domain.StateCompleted,
			SourceCurrency: domain.SGD, SourceAmount: 1200,
			DestinationCurrency: cur(domain.PHP), DestinationAmount: f64(49333.33),
			ExchangeRate: f64(41.1111), Fee: f64(8.5), FeeCurrency: cur(domain.SGD),
			Description: "Remittance to family in Manila",
			CreatedAt:   "2025-01-10T14:30:00Z", UpdatedAt: "2025-01-10T14:32:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeFee, State: domain.StateCompleted,
			SourceCurrency: domain.SGD, SourceAmount: 8.5,
			Description: "Transfer fee",
			CreatedAt:   "2025-01-10T14:30:01Z", UpdatedAt: "2025-01-10T14:30:01Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeConversion, State: domain.StateCompleted,
			SourceCurrency: domain.SGD, SourceAmount: 100,
			DestinationCurrency: cur(domain.THB), DestinationAmount: f64(2642.86),
			ExchangeRate: f64(26.4286),
			Description:  "Hold THB for Bangkok trip",
			CreatedAt:    "2025-01-22T11:15:00Z", UpdatedAt: "2025-01-22T11:15:02Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeReceive, State: domain.StateCompleted,
			SourceCurrency: domain.PHP, SourceAmount: 10000,
			DestinationCurrency: cur(domain.SGD), DestinationAmount: f64(243.24),
			ExchangeRate: f64(0.0243),
			Description:  "Repayment from Manila",
			CreatedAt:    "2025-02-01T08:45:00Z", UpdatedAt: "2025-02-01T08:47:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeSend, State: domain.StateProcessing,
			SourceCurrency: domain.SGD, SourceAmount: 800,
			DestinationCurrency: cur(domain.PHP), DestinationAmount: f64(32888.89),
			ExchangeRate: f64(41.1111), Fee: f64(6), FeeCurrency: cur(domain.SGD),
			Description: "Remittance in flight",
			CreatedAt:   "2025-02-14T16:20:00Z", UpdatedAt: "2025-02-14T16:20:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeDeposit, State: domain.StateProcessing,
			SourceCurrency: domain.SGD, SourceAmount: 2000,
			Description: "Bank transfer clearing",
			CreatedAt:   "2025-02-20T10:00:00Z", UpdatedAt: "2025-02-20T10:00:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeSend, State: domain.StateFailed,
			SourceCurrency: domain.SGD, SourceAmount: 450,
			Description: "Recipient account closed",
			CreatedAt:   "2025-02-25T13:05:00Z", UpdatedAt: "2025-02-25T13:06:00Z",
		},
		{
			ID: refundedSendID, UserID: "user-maria",
			Type: domain.TypeSend, State: domain.StateRefunded,
			SourceCurrency: domain.SGD, SourceAmount: 600,
			DestinationCurrency: cur(domain.VND), DestinationAmount: f64(11100000),
			ExchangeRate: f64(18500),
			Description:  "Cancelled by recipient bank",
			CreatedAt:    "2025-03-01T09:30:00Z", UpdatedAt: "2025-03-03T12:00:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-maria",
			Type: domain.TypeRefund, State: domain.StateCompleted,
			SourceCurrency: domain.SGD, SourceAmount: 600,
			Description:          "Refund for cancelled transfer",
			CreatedAt:            "2025-03-03T12:00:00Z", UpdatedAt: "2025-03-03T12:00:10Z",
			RelatedTransactionID: &refundedSendID,
		},

		{
			ID: uuid.NewString(), UserID: "user-ahmad",
			Type: domain.TypeDeposit, State: domain.StateCompleted,
			SourceCurrency: domain.MYR, SourceAmount: 3000,
			Description: "Payroll deposit",
			CreatedAt:   "2025-01-15T07:30:00Z", UpdatedAt: "2025-01-15T07:30:02Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-ahmad",
			Type: domain.TypeSend, State: domain.StateInitiated,
			SourceCurrency: domain.MYR, SourceAmount: 500,
			DestinationCurrency: cur(domain.IDR), DestinationAmount: f64(1746031.75),
			ExchangeRate: f64(3492.0635), Fee: f64(4), FeeCurrency: cur(domain.MYR),
			Description: "Transfer to Jakarta",
			CreatedAt:   "2025-02-03T19:10:00Z", UpdatedAt: "2025-02-03T19:10:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-ahmad",
			Type: domain.TypeReceive, State: domain.StateProcessing,
			SourceCurrency: domain.SGD, SourceAmount: 250,
			DestinationCurrency: cur(domain.MYR), DestinationAmount: f64(840.91),
			ExchangeRate: f64(3.3636),
			Description:  "Incoming from Singapore",
			CreatedAt:    "2025-02-18T12:40:00Z", UpdatedAt: "2025-02-18T12:40:00Z",
		},

		{
			ID: uuid.NewString(), UserID: "user-liza",
			Type: domain.TypeDeposit, State: domain.StateCompleted,
			SourceCurrency: domain.PHP, SourceAmount: 25000,
			Description: "Cash-in at partner outlet",
			CreatedAt:   "2025-01-08T10:20:00Z", UpdatedAt: "2025-01-08T10:20:03Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-liza",
			Type: domain.TypeSend, State: domain.StateCompleted,
			SourceCurrency: domain.PHP, SourceAmount: 5000,
			Description: "Tuition payment",
			CreatedAt:   "2025-01-28T15:55:00Z", UpdatedAt: "2025-01-28T15:57:00Z",
		},
		{
			ID: uuid.NewString(), UserID: "user-liza",
			Type: domain.TypeFee, State: domain.StateCompleted,
			SourceCurrency: domain.PHP, SourceAmount: 50,
			Description: "Service fee",
			CreatedAt:   "2025-01-28T15:55:01Z", UpdatedAt: "2025-01-28T15:55:01Z",
		},
	}

	return users, transactions
}

func cur(c domain.Currency) *domain.Currency { return &c }
func f64(v float64) *float64                 { return &v }
