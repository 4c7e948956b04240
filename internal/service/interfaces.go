// Package service defines the interfaces the wallet's components depend on.
package service

import (
	"context"
	"errors"

	"github.com/Ambaicci/zwip/internal/model"
)

// ErrStateNotFound indicates no wallet state has been persisted yet. Stores
// return it from LoadState on a fresh install; any other error means state
// may exist but could not be read.
var ErrStateNotFound = errors.New("wallet state not found")

// Store is the persistence contract for the wallet state blob. The ledger
// loads state once at startup and saves after every mutation.
type Store interface {
	// LoadState returns the persisted wallet state, or ErrStateNotFound when
	// nothing has been saved yet.
	LoadState(ctx context.Context) (*model.WalletState, error)
	SaveState(ctx context.Context, state *model.WalletState) error
	DeleteState(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// Settler models the settlement leg of a transaction: the part that would
// talk to a payment rail in a real wallet. Settle blocks until the transfer
// either clears or fails. The context is honored only before settlement
// begins; once in flight, a settlement runs to completion.
type Settler interface {
	Settle(ctx context.Context, total model.Money) error
}
