package engine

import (
	"github.com/shopspring/decimal"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
	"github.com/marlonbarreto-git/tejaco-ledger/internal/fx"
)

// Aggregate computes per-currency available/pending/total balances from
// a transaction set, plus the grand total converted into homeCurrency.
// Input order is irrelevant: every transaction is scored independently
// into a per-currency accumulator.
func Aggregate(transactions []domain.Transaction, homeCurrency domain.Currency) domain.BalanceSummary {
	acc := newAccumulator()
	for _, tx := range transactions {
		acc.apply(tx)
	}

	balances := make([]domain.CurrencyBalance, 0, len(acc.order))
	totalInHome := decimal.Zero
	for _, c := range acc.order {
		r := acc.balances[c]
		available := r.available.Round(2)
		pending := r.pending.Round(2)
		// Total is derived from the already-rounded components so the
		// available+pending==total invariant survives rounding.
		total := available.Add(pending).Round(2)

		balances = append(balances, domain.CurrencyBalance{
			Currency:  c,
			Available: available.InexactFloat64(),
			Pending:   pending.InexactFloat64(),
			Total:     total.InexactFloat64(),
		})

		converted := fx.Convert(total.InexactFloat64(), c, homeCurrency)
		totalInHome = totalInHome.Add(decimal.NewFromFloat(converted))
	}

	return domain.BalanceSummary{
		Balances:            balances,
		TotalInHomeCurrency: totalInHome.Round(2).InexactFloat64(),
		HomeCurrency:        homeCurrency,
	}
}
