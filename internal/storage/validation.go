// Package storage persists the Zwip wallet state in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ambaicci/zwip/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidState = errors.New("invalid wallet state")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateState ensures a wallet state is structurally sound before it is
// written: no nil pointer, no negative balance, no record without an id.
func validateState(state *model.WalletState) error {
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilParameter)
	}
	if state.Balance < 0 {
		return fmt.Errorf("%w: negative balance", ErrInvalidState)
	}
	for i, txn := range state.Transactions {
		if txn.ID == "" {
			return fmt.Errorf("%w: transaction at index %d missing ID", ErrInvalidState, i)
		}
		if txn.Timestamp.IsZero() {
			return fmt.Errorf("%w: transaction %s missing timestamp", ErrInvalidState, txn.ID)
		}
	}
	return nil
}
