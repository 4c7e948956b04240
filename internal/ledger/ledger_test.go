package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests. loadErr makes the next LoadState
// fail, failSaves makes SaveState fail, and failDelete makes DeleteState
// fail; these exercise the error branches.
type memStore struct {
	state      *model.WalletState
	loadErr    error
	saveCalls  int
	failSaves  bool
	failDelete bool
}

var errSaveFailed = errors.New("save failed")

func (m *memStore) LoadState(_ context.Context) (*model.WalletState, error) {
	if m.loadErr != nil {
		err := m.loadErr
		m.loadErr = nil
		return nil, err
	}
	if m.state == nil {
		return nil, service.ErrStateNotFound
	}
	copied := *m.state
	return &copied, nil
}

func (m *memStore) SaveState(_ context.Context, state *model.WalletState) error {
	m.saveCalls++
	if m.failSaves {
		return errSaveFailed
	}
	copied := *state
	m.state = &copied
	return nil
}

func (m *memStore) DeleteState(_ context.Context) error {
	if m.failDelete {
		return errors.New("delete failed")
	}
	m.state = nil
	return nil
}

func (m *memStore) Migrate(_ context.Context) error { return nil }
func (m *memStore) Close() error                    { return nil }

func newTestLedger(t *testing.T, balance string) (*Ledger, *memStore) {
	t.Helper()
	store := &memStore{
		state: &model.WalletState{
			User:    &model.User{Name: "Test User", PhoneNumber: "+1 (555) 000-0001"},
			Balance: model.MustParseMoney(balance),
		},
	}
	l, err := New(context.Background(), store)
	require.NoError(t, err)
	return l, store
}

func TestNew_SeedsFreshWallet(t *testing.T) {
	store := &memStore{}
	l, err := New(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, model.MustParseMoney("1250.75"), l.Balance())
	assert.Len(t, l.ListTransactions(Filter{}, Sort{}), 3)
	require.NotNil(t, store.state, "seed state is persisted")
}

func TestNew_TransientLoadFailureDoesNotSeed(t *testing.T) {
	store := &memStore{
		state: &model.WalletState{
			User:    &model.User{Name: "Test User"},
			Balance: model.MustParseMoney("9999.00"),
		},
		loadErr: errors.New("database is locked"),
	}

	_, err := New(context.Background(), store)
	require.Error(t, err, "a load failure other than not-found must not look like a fresh install")

	assert.Zero(t, store.saveCalls, "nothing written over the existing wallet")
	assert.Equal(t, model.MustParseMoney("9999.00"), store.state.Balance)

	// Once the store recovers the wallet loads intact.
	l, err := New(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, model.MustParseMoney("9999.00"), l.Balance())
}

func TestDebit_UpdatesBalanceAndLog(t *testing.T) {
	l, _ := newTestLedger(t, "100.00")
	ctx := context.Background()

	record, err := l.Debit(ctx, model.TxSent,
		model.MustParseMoney("50.00"), model.MustParseMoney("1.50"), "Sarah Wilson", "Lunch")
	require.NoError(t, err)

	assert.Equal(t, model.TxSent, record.Kind)
	assert.Equal(t, model.StatusCompleted, record.Status)
	assert.Equal(t, model.MustParseMoney("50.00"), record.Amount)
	assert.Equal(t, model.MustParseMoney("1.50"), record.Fee)
	assert.NotEmpty(t, record.ID)

	assert.Equal(t, model.MustParseMoney("48.50"), l.Balance())

	txns := l.ListTransactions(Filter{}, Sort{})
	require.Len(t, txns, 1)
	assert.Equal(t, record.ID, txns[0].ID, "new record appended most-recent-first")
}

func TestDebit_InsufficientBalanceLeavesStateUntouched(t *testing.T) {
	l, _ := newTestLedger(t, "100.00")
	ctx := context.Background()

	// fee 1.50 pushes the total to 101.50, above the 100.00 balance
	_, err := l.Debit(ctx, model.TxSent,
		model.MustParseMoney("100.00"), model.MustParseMoney("1.50"), "Sarah Wilson", "")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	assert.Equal(t, model.MustParseMoney("100.00"), l.Balance())
	assert.Empty(t, l.ListTransactions(Filter{}, Sort{}))
}

func TestDebit_RejectsCreditKinds(t *testing.T) {
	l, _ := newTestLedger(t, "100.00")

	_, err := l.Debit(context.Background(), model.TxReceived,
		model.MustParseMoney("10.00"), 0, "Mike", "")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestCredit_HasNoUpperBound(t *testing.T) {
	l, _ := newTestLedger(t, "0.00")
	ctx := context.Background()

	record, err := l.Credit(ctx, model.TxAdded,
		model.MustParseMoney("50000.00"), model.MustParseMoney("1.50"), "Bank Transfer", "")
	require.NoError(t, err)

	// The fee is charged on the funding source, not the credited amount.
	assert.Equal(t, model.MustParseMoney("50000.00"), l.Balance())
	assert.Equal(t, model.MustParseMoney("1.50"), record.Fee)
}

func TestLedger_RunningSumInvariant(t *testing.T) {
	l, _ := newTestLedger(t, "500.00")
	ctx := context.Background()

	_, err := l.Credit(ctx, model.TxReceived, model.MustParseMoney("120.00"), 0, "Mike", "")
	require.NoError(t, err)
	_, err = l.Debit(ctx, model.TxPaid, model.MustParseMoney("30.00"), model.MustParseMoney("0.50"), "Green Grocers", "")
	require.NoError(t, err)
	_, err = l.Debit(ctx, model.TxWithdrawal, model.MustParseMoney("100.00"), model.MustParseMoney("1.50"), "Cash at Agent", "")
	require.NoError(t, err)
	_, err = l.Credit(ctx, model.TxRefund, model.MustParseMoney("5.00"), 0, "Green Grocers", "")
	require.NoError(t, err)

	// 500 + 120 - 30.50 - 101.50 + 5 = 493.00
	assert.Equal(t, model.MustParseMoney("493.00"), l.Balance())
}

func TestDebit_PersistFailureRollsBack(t *testing.T) {
	l, store := newTestLedger(t, "100.00")
	store.failSaves = true
	ctx := context.Background()

	_, err := l.Debit(ctx, model.TxSent, model.MustParseMoney("10.00"), 0, "Sarah Wilson", "")
	require.Error(t, err)

	assert.Equal(t, model.MustParseMoney("100.00"), l.Balance())
	assert.Empty(t, l.ListTransactions(Filter{}, Sort{}))
}

func TestLogout_ClearsEverything(t *testing.T) {
	l, store := newTestLedger(t, "100.00")
	ctx := context.Background()

	_, err := l.Credit(ctx, model.TxReceived, model.MustParseMoney("10.00"), 0, "Mike", "")
	require.NoError(t, err)

	require.NoError(t, l.Logout(ctx))

	assert.Equal(t, model.Money(0), l.Balance())
	assert.Nil(t, l.User())
	assert.Empty(t, l.ListTransactions(Filter{}, Sort{}))
	assert.Nil(t, store.state, "persisted state deleted")
}

func TestLogout_DeleteFailureKeepsWallet(t *testing.T) {
	l, store := newTestLedger(t, "100.00")
	store.failDelete = true

	err := l.Logout(context.Background())
	require.Error(t, err)

	assert.Equal(t, model.MustParseMoney("100.00"), l.Balance(), "in-memory state kept when the delete fails")
	require.NotNil(t, store.state, "persisted state kept when the delete fails")
}

func TestUpdateUser(t *testing.T) {
	l, _ := newTestLedger(t, "100.00")
	ctx := context.Background()

	require.NoError(t, l.UpdateUser(ctx, model.User{Name: "Jane Doe", PhoneNumber: "+1 (555) 000-0002"}))
	user := l.User()
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
}

func TestSetBalanceVisible(t *testing.T) {
	l, _ := newTestLedger(t, "100.00")
	ctx := context.Background()

	assert.False(t, l.BalanceVisible())
	require.NoError(t, l.SetBalanceVisible(ctx, true))
	assert.True(t, l.BalanceVisible())
}
