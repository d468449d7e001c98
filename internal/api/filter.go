package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// transactionFilter narrows a user's history before it reaches the
// engine. Zero-value fields mean "no filter".
type transactionFilter struct {
	currency domain.Currency
	state    domain.TransactionState
	txType   domain.TransactionType
	dateFrom time.Time
	dateTo   time.Time
}

// parseTransactionFilter reads filter query parameters, returning a
// human-readable message for the first invalid one.
func parseTransactionFilter(query url.Values) (transactionFilter, string) {
	var f transactionFilter

	if v := query.Get("currency"); v != "" {
		c := domain.Currency(v)
		if !c.Valid() {
			return f, fmt.Sprintf("Unknown currency %q", v)
		}
		f.currency = c
	}
	if v := query.Get("state"); v != "" {
		s := domain.TransactionState(v)
		if !s.Valid() {
			return f, fmt.Sprintf("Unknown state %q", v)
		}
		f.state = s
	}
	if v := query.Get("type"); v != "" {
		t := domain.TransactionType(v)
		if !t.Valid() {
			return f, fmt.Sprintf("Unknown type %q", v)
		}
		f.txType = t
	}
	if v := query.Get("dateFrom"); v != "" {
		t, err := parseQueryTime(v)
		if err != nil {
			return f, fmt.Sprintf("Malformed dateFrom %q", v)
		}
		f.dateFrom = t
	}
	if v := query.Get("dateTo"); v != "" {
		t, err := parseQueryTime(v)
		if err != nil {
			return f, fmt.Sprintf("Malformed dateTo %q", v)
		}
		f.dateTo = t
	}
	return f, ""
}

// apply keeps transactions that match every set filter. The currency
// filter matches either leg of a transaction; date bounds are inclusive
// against createdAt.
func (f transactionFilter) apply(transactions []domain.Transaction) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range transactions {
		if f.currency != "" &&
			tx.SourceCurrency != f.currency &&
			(tx.DestinationCurrency == nil || *tx.DestinationCurrency != f.currency) {
			continue
		}
		if f.state != "" && tx.State != f.state {
			continue
		}
		if f.txType != "" && tx.Type != f.txType {
			continue
		}
		if !f.dateFrom.IsZero() || !f.dateTo.IsZero() {
			at, err := time.Parse(time.RFC3339, tx.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("transaction %s createdAt %q: %w", tx.ID, tx.CreatedAt, err)
			}
			if !f.dateFrom.IsZero() && at.Before(f.dateFrom) {
				continue
			}
			if !f.dateTo.IsZero() && at.After(f.dateTo) {
				continue
			}
		}
		out = append(out, tx)
	}
	return out, nil
}
