// Package ledger owns the wallet balance and the append-only transaction
// log. Every mutation updates the balance, appends exactly one immutable
// record, and persists the full state before returning, so the invariant
// balance == initial + sum(credits) - sum(debits) holds at all times.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Ambaicci/zwip/internal/common"
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/service"
)

// Mutation errors.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLoggedOut           = errors.New("no active wallet session")
	ErrWrongKind           = errors.New("transaction kind does not match operation")
)

// Ledger is the single source of truth for the wallet state. Mutations are
// serialized with a mutex so overlapping flows (a send wizard while a
// request credits the account) never interleave a balance update with a
// log append.
type Ledger struct {
	store service.Store
	state model.WalletState
	mu    sync.Mutex
}

// New loads the persisted wallet state from store, seeding the demo state
// on first run. Only a not-found load seeds; any other load failure is
// returned, so a transiently unreadable wallet is never overwritten.
func New(ctx context.Context, store service.Store) (*Ledger, error) {
	state, err := store.LoadState(ctx)
	if err == nil {
		return &Ledger{store: store, state: *state}, nil
	}
	if !errors.Is(err, service.ErrStateNotFound) {
		return nil, fmt.Errorf("failed to load wallet state: %w", err)
	}

	seeded := model.SeedState()
	l := &Ledger{store: store, state: seeded}
	if saveErr := l.store.SaveState(ctx, &seeded); saveErr != nil {
		return nil, fmt.Errorf("failed to persist seed state: %w", saveErr)
	}
	common.LogInfo("seeded new wallet", common.Fields{"balance": seeded.Balance.String()})
	return l, nil
}

// Balance returns the current balance. O(1): the balance is tracked
// incrementally, never recomputed from the log.
func (l *Ledger) Balance() model.Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Balance
}

// User returns the wallet owner's profile, or nil after logout.
func (l *Ledger) User() *model.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.User == nil {
		return nil
	}
	u := *l.state.User
	return &u
}

// UpdateUser replaces the stored profile and persists.
func (l *Ledger) UpdateUser(ctx context.Context, user model.User) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.User == nil {
		return ErrLoggedOut
	}
	prev := l.state.User
	l.state.User = &user
	if err := l.persist(ctx); err != nil {
		l.state.User = prev
		return err
	}
	return nil
}

// BalanceVisible reports whether the balance should be rendered in clear.
func (l *Ledger) BalanceVisible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.BalanceIsVisible
}

// SetBalanceVisible flips the visibility flag and persists.
func (l *Ledger) SetBalanceVisible(ctx context.Context, visible bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.state.BalanceIsVisible
	l.state.BalanceIsVisible = visible
	if err := l.persist(ctx); err != nil {
		l.state.BalanceIsVisible = prev
		return err
	}
	return nil
}

// Debit moves amount+fee out of the balance and appends a completed record
// of the given debit kind. Fails with ErrInsufficientBalance when the total
// exceeds the balance; on any failure the balance and log are untouched.
func (l *Ledger) Debit(ctx context.Context, kind model.TxKind, amount, fee model.Money, counterparty, note string) (model.Transaction, error) {
	if !kind.IsDebit() {
		return model.Transaction{}, fmt.Errorf("%w: %s is not a debit kind", ErrWrongKind, kind)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := amount.Add(fee)
	if total > l.state.Balance {
		return model.Transaction{}, fmt.Errorf("%w: need $%s, have $%s",
			ErrInsufficientBalance, total, l.state.Balance)
	}

	record := model.NewTransaction(kind, amount, fee, counterparty, note)
	if err := l.apply(ctx, record, -total); err != nil {
		return model.Transaction{}, err
	}

	common.LogInfo("debit applied", common.Fields{
		"kind":    string(kind),
		"amount":  amount.String(),
		"fee":     fee.String(),
		"balance": l.state.Balance.String(),
	})
	return record, nil
}

// Credit moves amount into the balance and appends a completed record of
// the given credit kind. The fee, if any, is charged on top of the funding
// source (card, agent), never deducted from the credited amount. Credits
// have no upper bound and cannot fail on business grounds; only a
// persistence error is possible.
func (l *Ledger) Credit(ctx context.Context, kind model.TxKind, amount, fee model.Money, counterparty, note string) (model.Transaction, error) {
	if kind.IsDebit() {
		return model.Transaction{}, fmt.Errorf("%w: %s is not a credit kind", ErrWrongKind, kind)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	record := model.NewTransaction(kind, amount, fee, counterparty, note)
	if err := l.apply(ctx, record, amount); err != nil {
		return model.Transaction{}, err
	}

	common.LogInfo("credit applied", common.Fields{
		"kind":    string(kind),
		"amount":  amount.String(),
		"balance": l.state.Balance.String(),
	})
	return record, nil
}

// apply mutates balance and log together and persists. On persistence
// failure the in-memory state is rolled back so the mutation is
// all-or-nothing. Callers must hold l.mu.
func (l *Ledger) apply(ctx context.Context, record model.Transaction, delta model.Money) error {
	l.state.Balance = l.state.Balance.Add(delta)
	l.state.Transactions = append([]model.Transaction{record}, l.state.Transactions...)

	if err := l.persist(ctx); err != nil {
		l.state.Balance = l.state.Balance.Sub(delta)
		l.state.Transactions = l.state.Transactions[1:]
		return err
	}
	return nil
}

func (l *Ledger) persist(ctx context.Context) error {
	state := l.state
	if err := l.store.SaveState(ctx, &state); err != nil {
		return fmt.Errorf("failed to persist wallet state: %w", err)
	}
	return nil
}

// Logout deletes the persisted state and then clears user, balance and
// transaction log. Irreversible once the delete succeeds; a failed delete
// leaves both disk and memory intact.
func (l *Ledger) Logout(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.DeleteState(ctx); err != nil {
		return fmt.Errorf("failed to clear persisted state: %w", err)
	}
	l.state = model.WalletState{}
	common.LogInfo("wallet logged out", nil)
	return nil
}
