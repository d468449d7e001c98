package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// ErrInvalidTimestamp is returned when a transaction's createdAt cannot
// be parsed; a silently misordered timeline would be worse than an error.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// BuildTimeline replays the transaction history in chronological order,
// recording each transaction's balance impacts and a snapshot of the
// running balances as of that transaction, then returns the entries
// newest-first. Running balances stay in each transaction's native
// currency; homeCurrency is accepted for symmetry with Aggregate but
// conversion is the aggregator's job, not the timeline's.
func BuildTimeline(transactions []domain.Transaction, homeCurrency domain.Currency) ([]domain.TimelineEntry, error) {
	type stamped struct {
		tx domain.Transaction
		at time.Time
	}

	sorted := make([]stamped, 0, len(transactions))
	for _, tx := range transactions {
		at, err := time.Parse(time.RFC3339, tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %s createdAt %q", ErrInvalidTimestamp, tx.ID, tx.CreatedAt)
		}
		sorted = append(sorted, stamped{tx: tx, at: at})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].at.Before(sorted[j].at)
	})

	acc := newAccumulator()
	timeline := make([]domain.TimelineEntry, 0, len(sorted))
	for _, s := range sorted {
		impacts := acc.apply(s.tx)
		if impacts == nil {
			impacts = []domain.BalanceImpact{}
		}
		timeline = append(timeline, domain.TimelineEntry{
			Transaction:     s.tx,
			BalanceImpact:   impacts,
			RunningBalances: acc.snapshot(),
		})
	}

	// Presentation wants newest first; accumulation stays ascending so
	// each snapshot reflects history up to and including its entry.
	for i, j := 0, len(timeline)-1; i < j; i, j = i+1, j-1 {
		timeline[i], timeline[j] = timeline[j], timeline[i]
	}
	return timeline, nil
}
