package domain

// TransactionType classifies what a transaction does to the ledger.
type TransactionType string

const (
	TypeSend       TransactionType = "send"
	TypeReceive    TransactionType = "receive"
	TypeConversion TransactionType = "conversion"
	TypeFee        TransactionType = "fee"
	TypeRefund     TransactionType = "refund"
	TypeDeposit    TransactionType = "deposit"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeSend, TypeReceive, TypeConversion, TypeFee, TypeRefund, TypeDeposit:
		return true
	}
	return false
}

// TransactionState is a transaction's position in its lifecycle.
type TransactionState string

const (
	StateInitiated  TransactionState = "initiated"
	StateProcessing TransactionState = "processing"
	StateCompleted  TransactionState = "completed"
	StateFailed     TransactionState = "failed"
	StateRefunded   TransactionState = "refunded"
)

// Valid reports whether s is a known transaction state.
func (s TransactionState) Valid() bool {
	switch s {
	case StateInitiated, StateProcessing, StateCompleted, StateFailed, StateRefunded:
		return true
	}
	return false
}

// Transaction is the immutable record of one money movement. The engine
// only ever reads these; creation and state transitions happen upstream.
type Transaction struct {
	ID                   string           `json:"id"`
	UserID               string           `json:"userId"`
	Type                 TransactionType  `json:"type"`
	State                TransactionState `json:"state"`
	SourceCurrency       Currency         `json:"sourceCurrency"`
	SourceAmount         float64          `json:"sourceAmount"`
	DestinationCurrency  *Currency        `json:"destinationCurrency,omitempty"`
	DestinationAmount    *float64         `json:"destinationAmount,omitempty"`
	ExchangeRate         *float64         `json:"exchangeRate,omitempty"`
	Fee                  *float64         `json:"fee,omitempty"`
	FeeCurrency          *Currency        `json:"feeCurrency,omitempty"`
	Description          string           `json:"description"`
	CreatedAt            string           `json:"createdAt"`
	UpdatedAt            string           `json:"updatedAt"`
	RelatedTransactionID *string          `json:"relatedTransactionId,omitempty"`
}

// User is an account holder in the remittance system.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	HomeCurrency Currency `json:"homeCurrency"`
	Country      string   `json:"country"`
}

// CurrencyBalance is one currency's slice of a user's holdings.
// Total is always the rounded sum of Available and Pending.
type CurrencyBalance struct {
	Currency  Currency `json:"currency"`
	Available float64  `json:"available"`
	Pending   float64  `json:"pending"`
	Total     float64  `json:"total"`
}

// BalanceSummary is the full multi-currency balance picture for a user,
// with the grand total rolled up into the home currency.
type BalanceSummary struct {
	Balances            []CurrencyBalance `json:"balances"`
	TotalInHomeCurrency float64           `json:"totalInHomeCurrency"`
	HomeCurrency        Currency          `json:"homeCurrency"`
}

// ImpactKind is the sign of a balance impact.
type ImpactKind string

const (
	ImpactCredit ImpactKind = "credit"
	ImpactDebit  ImpactKind = "debit"
)

// BalanceImpact is the currency-tagged effect one transaction had on the
// running balances.
type BalanceImpact struct {
	Currency Currency   `json:"currency"`
	Amount   float64    `json:"amount"`
	Kind     ImpactKind `json:"type"`
}

// RunningBalance is the accumulated available/pending pair for a single
// currency at a point in the timeline.
type RunningBalance struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
}

// TimelineEntry wraps a transaction with its balance impacts and a
// snapshot of all running balances as of (and including) that
// transaction in chronological order.
type TimelineEntry struct {
	Transaction     Transaction                 `json:"transaction"`
	BalanceImpact   []BalanceImpact             `json:"balanceImpact"`
	RunningBalances map[Currency]RunningBalance `json:"runningBalances"`
}
