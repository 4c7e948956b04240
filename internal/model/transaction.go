package model

import (
	"time"

	"github.com/google/uuid"
)

// TxKind classifies the direction and origin of a money movement.
type TxKind string

// Transaction kinds. Sent, paid and withdrawal debit the balance;
// received, added and refund credit it.
const (
	TxSent       TxKind = "sent"
	TxReceived   TxKind = "received"
	TxPaid       TxKind = "paid"
	TxWithdrawal TxKind = "withdrawal"
	TxAdded      TxKind = "added"
	TxRefund     TxKind = "refund"
)

// IsDebit reports whether the kind moves money out of the wallet.
func (k TxKind) IsDebit() bool {
	switch k {
	case TxSent, TxPaid, TxWithdrawal:
		return true
	default:
		return false
	}
}

// TxStatus is the settlement status of a transaction.
type TxStatus string

// Transaction statuses.
const (
	StatusCompleted TxStatus = "completed"
	StatusPending   TxStatus = "pending"
	StatusFailed    TxStatus = "failed"
	StatusCancelled TxStatus = "cancelled"
)

// Transaction is one immutable entry in the wallet's history. It is created
// by the ledger at commit time and never mutated afterwards. JSON tags match
// the persisted state blob schema.
type Transaction struct {
	Timestamp time.Time `json:"timestamp"`
	ID        string    `json:"id"`
	Kind      TxKind    `json:"type"`
	Contact   string    `json:"contact"`
	Note      string    `json:"note,omitempty"`
	Status    TxStatus  `json:"status,omitempty"`
	Amount    Money     `json:"amount"`
	Fee       Money     `json:"fee,omitempty"`
}

// NewTransaction builds a completed record with a fresh id and timestamp.
func NewTransaction(kind TxKind, amount, fee Money, contact, note string) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Kind:      kind,
		Amount:    amount,
		Fee:       fee,
		Contact:   contact,
		Note:      note,
		Timestamp: time.Now().UTC(),
		Status:    StatusCompleted,
	}
}
