package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "zwip.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleState() *model.WalletState {
	return &model.WalletState{
		User: &model.User{
			Name:        "John Doe",
			PhoneNumber: "+1 (555) 123-4567",
			Email:       "john.doe@email.com",
		},
		Balance:          model.MustParseMoney("1250.75"),
		BalanceIsVisible: true,
		Transactions: []model.Transaction{
			{
				ID:        "t1",
				Kind:      model.TxSent,
				Amount:    model.MustParseMoney("45.00"),
				Fee:       model.MustParseMoney("1.50"),
				Contact:   "Sarah Wilson",
				Note:      "Dinner split",
				Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Status:    model.StatusCompleted,
			},
		},
	}
}

func TestNewSQLiteStorage_Validation(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestLoadState_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.LoadState(context.Background())
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestSaveAndLoadState(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	want := sampleState()
	require.NoError(t, s.SaveState(ctx, want))

	got, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveState_ReplacesPreviousBlob(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first := sampleState()
	require.NoError(t, s.SaveState(ctx, first))

	second := sampleState()
	second.Balance = model.MustParseMoney("999.99")
	second.Transactions = nil
	require.NoError(t, s.SaveState(ctx, second))

	got, err := s.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.MustParseMoney("999.99"), got.Balance)
	assert.Empty(t, got.Transactions, "old blob fully replaced, not merged")
}

func TestSaveState_RejectsInvalidState(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.SaveState(ctx, nil), ErrNilParameter)

	negative := sampleState()
	negative.Balance = model.Cents(-1)
	assert.ErrorIs(t, s.SaveState(ctx, negative), ErrInvalidState)

	missingID := sampleState()
	missingID.Transactions[0].ID = ""
	assert.ErrorIs(t, s.SaveState(ctx, missingID), ErrInvalidState)
}

func TestDeleteState(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveState(ctx, sampleState()))
	require.NoError(t, s.DeleteState(ctx))

	_, err := s.LoadState(ctx)
	assert.ErrorIs(t, err, ErrStateNotFound)

	// Deleting an already-empty store is not an error.
	assert.NoError(t, s.DeleteState(ctx))
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Running migrations again on an up-to-date schema is a no-op.
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.SaveState(ctx, sampleState()))
}

func TestStorage_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "zwip.db")
	ctx := context.Background()

	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.SaveState(ctx, sampleState()))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	got, err := reopened.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.MustParseMoney("1250.75"), got.Balance)
}
