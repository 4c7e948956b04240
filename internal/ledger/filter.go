package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/Ambaicci/zwip/internal/model"
)

// TimeWindow restricts a transaction query to a recent period. Today means
// the current calendar day; week, month and year are fixed periods of 7, 30
// and 365 days ending now.
type TimeWindow string

// Supported time windows, matching the history screen's filter chips.
const (
	WindowAll   TimeWindow = "all"
	WindowToday TimeWindow = "today"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
)

// SortField orders a transaction view.
type SortField string

// Supported sort fields.
const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
	SortByName   SortField = "name"
)

// Filter selects which transactions appear in a view. Zero values mean
// "no restriction".
type Filter struct {
	Kind   model.TxKind
	Window TimeWindow
	Search string
	Now    time.Time // reference time for Window; zero means time.Now
}

// Sort orders a view. The zero value sorts by date, newest first.
type Sort struct {
	Field     SortField
	Ascending bool
}

// Summary aggregates a filtered view the way the history screen's header
// does: totals for incoming, outgoing and fees.
type Summary struct {
	Count    int
	Incoming model.Money
	Outgoing model.Money
	Fees     model.Money
}

// ListTransactions returns a filtered, sorted, read-only copy of the log.
// Each call recomputes from the full log; two calls with the same arguments
// and no intervening mutation return identical output.
func (l *Ledger) ListTransactions(filter Filter, sortBy Sort) []model.Transaction {
	l.mu.Lock()
	log := make([]model.Transaction, len(l.state.Transactions))
	copy(log, l.state.Transactions)
	l.mu.Unlock()

	filtered := log[:0]
	for _, txn := range log {
		if matches(txn, filter) {
			filtered = append(filtered, txn)
		}
	}

	sortTransactions(filtered, sortBy)
	return filtered
}

// Summarize aggregates the transactions a filter selects.
func (l *Ledger) Summarize(filter Filter) Summary {
	txns := l.ListTransactions(filter, Sort{})
	var s Summary
	s.Count = len(txns)
	for _, txn := range txns {
		if txn.Kind.IsDebit() {
			s.Outgoing = s.Outgoing.Add(txn.Amount)
		} else {
			s.Incoming = s.Incoming.Add(txn.Amount)
		}
		s.Fees = s.Fees.Add(txn.Fee)
	}
	return s
}

func matches(txn model.Transaction, f Filter) bool {
	if f.Kind != "" && txn.Kind != f.Kind {
		return false
	}

	if f.Window != "" && f.Window != WindowAll {
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		var cutoff time.Time
		switch f.Window {
		case WindowToday:
			// Calendar day, not a rolling 24 hours.
			cutoff = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		case WindowWeek:
			cutoff = now.AddDate(0, 0, -7)
		case WindowMonth:
			cutoff = now.AddDate(0, 0, -30)
		case WindowYear:
			cutoff = now.AddDate(0, 0, -365)
		}
		if txn.Timestamp.Before(cutoff) {
			return false
		}
	}

	if f.Search != "" {
		query := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(txn.Contact), query) &&
			!strings.Contains(strings.ToLower(txn.Note), query) {
			return false
		}
	}
	return true
}

func sortTransactions(txns []model.Transaction, s Sort) {
	less := func(a, b model.Transaction) bool {
		switch s.Field {
		case SortByAmount:
			if a.Amount != b.Amount {
				return a.Amount < b.Amount
			}
		case SortByName:
			if a.Contact != b.Contact {
				return a.Contact < b.Contact
			}
		default:
			if !a.Timestamp.Equal(b.Timestamp) {
				return a.Timestamp.Before(b.Timestamp)
			}
		}
		// Stable tiebreak so equal keys keep a deterministic order.
		return a.ID < b.ID
	}

	sort.SliceStable(txns, func(i, j int) bool {
		if s.Ascending {
			return less(txns[i], txns[j])
		}
		return less(txns[j], txns[i])
	})
}
