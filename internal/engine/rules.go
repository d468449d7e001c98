// Package engine derives balances and transaction timelines from a
// user's transaction history. Both computations are pure: they read a
// transaction slice and build fresh accumulator state per call.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// running is one currency's in-progress available/pending pair. Amounts
// accumulate exactly; rounding happens once, at the edges.
type running struct {
	available decimal.Decimal
	pending   decimal.Decimal
}

// accumulator tracks per-currency running balances in first-touch order,
// so results come out in the order currencies entered the ledger.
type accumulator struct {
	balances map[domain.Currency]*running
	order    []domain.Currency
}

func newAccumulator() *accumulator {
	return &accumulator{balances: make(map[domain.Currency]*running)}
}

// at returns the running pair for a currency, materializing it on first
// touch.
func (a *accumulator) at(c domain.Currency) *running {
	r, ok := a.balances[c]
	if !ok {
		r = &running{}
		a.balances[c] = r
		a.order = append(a.order, c)
	}
	return r
}

// apply scores a single transaction against the running balances and
// returns the balance impacts it produced, in order. Each transaction is
// scored independently: a refunded send keeps its debit because the
// compensating refund arrives as its own transaction.
func (a *accumulator) apply(tx domain.Transaction) []domain.BalanceImpact {
	if tx.State == domain.StateFailed {
		return nil
	}

	var impacts []domain.BalanceImpact
	amount := decimal.NewFromFloat(tx.SourceAmount)

	switch tx.Type {
	case domain.TypeDeposit:
		switch tx.State {
		case domain.StateCompleted:
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Add(amount)
			impacts = append(impacts, credit(tx.SourceCurrency, tx.SourceAmount))
		case domain.StateProcessing, domain.StateInitiated:
			r := a.at(tx.SourceCurrency)
			r.pending = r.pending.Add(amount)
			impacts = append(impacts, credit(tx.SourceCurrency, tx.SourceAmount))
		}

	case domain.TypeReceive:
		if tx.DestinationCurrency == nil || tx.DestinationAmount == nil {
			break
		}
		dstAmount := decimal.NewFromFloat(*tx.DestinationAmount)
		switch tx.State {
		case domain.StateCompleted:
			r := a.at(*tx.DestinationCurrency)
			r.available = r.available.Add(dstAmount)
			impacts = append(impacts, credit(*tx.DestinationCurrency, *tx.DestinationAmount))
		case domain.StateProcessing, domain.StateInitiated:
			r := a.at(*tx.DestinationCurrency)
			r.pending = r.pending.Add(dstAmount)
			impacts = append(impacts, credit(*tx.DestinationCurrency, *tx.DestinationAmount))
		}

	case domain.TypeRefund:
		if tx.State == domain.StateCompleted {
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Add(amount)
			impacts = append(impacts, credit(tx.SourceCurrency, tx.SourceAmount))
		}

	case domain.TypeSend:
		switch tx.State {
		case domain.StateCompleted, domain.StateRefunded:
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Sub(amount)
			impacts = append(impacts, debit(tx.SourceCurrency, tx.SourceAmount))
		case domain.StateProcessing, domain.StateInitiated:
			// Held: out of available, visible as pending.
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Sub(amount)
			r.pending = r.pending.Add(amount)
			impacts = append(impacts, debit(tx.SourceCurrency, tx.SourceAmount))
		}

	case domain.TypeFee:
		if tx.State == domain.StateCompleted {
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Sub(amount)
			impacts = append(impacts, debit(tx.SourceCurrency, tx.SourceAmount))
		}

	case domain.TypeConversion:
		if tx.State == domain.StateCompleted {
			r := a.at(tx.SourceCurrency)
			r.available = r.available.Sub(amount)
			impacts = append(impacts, debit(tx.SourceCurrency, tx.SourceAmount))
			if tx.DestinationCurrency != nil && tx.DestinationAmount != nil {
				d := a.at(*tx.DestinationCurrency)
				d.available = d.available.Add(decimal.NewFromFloat(*tx.DestinationAmount))
				impacts = append(impacts, credit(*tx.DestinationCurrency, *tx.DestinationAmount))
			}
		}
	}

	return impacts
}

// snapshot deep-copies the running balances so later mutations cannot
// leak into entries already emitted.
func (a *accumulator) snapshot() map[domain.Currency]domain.RunningBalance {
	out := make(map[domain.Currency]domain.RunningBalance, len(a.balances))
	for c, r := range a.balances {
		out[c] = domain.RunningBalance{
			Available: r.available.InexactFloat64(),
			Pending:   r.pending.InexactFloat64(),
		}
	}
	return out
}

func credit(c domain.Currency, amount float64) domain.BalanceImpact {
	return domain.BalanceImpact{Currency: c, Amount: amount, Kind: domain.ImpactCredit}
}

func debit(c domain.Currency, amount float64) domain.BalanceImpact {
	return domain.BalanceImpact{Currency: c, Amount: amount, Kind: domain.ImpactDebit}
}
