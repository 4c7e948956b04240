package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletState_BlobSchema(t *testing.T) {
	state := SeedState()

	data, err := json.Marshal(&state)
	require.NoError(t, err)

	var blob map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &blob))

	// The persisted blob keeps the key names of the original local-storage
	// entry, so an exported wallet stays readable.
	for _, key := range []string{"user", "balance", "balanceIsVisible", "transactions"} {
		assert.Contains(t, blob, key)
	}
	assert.Equal(t, "1250.75", string(blob["balance"]), "balance serialized as a plain number")
}

func TestSeedState(t *testing.T) {
	state := SeedState()

	require.NotNil(t, state.User)
	assert.Equal(t, "John Doe", state.User.Name)
	assert.Equal(t, MustParseMoney("1250.75"), state.Balance)
	assert.Len(t, state.Transactions, 3)
	for _, txn := range state.Transactions {
		assert.NotEmpty(t, txn.ID)
		assert.False(t, txn.Timestamp.IsZero())
	}
}

func TestNewTransaction(t *testing.T) {
	txn := NewTransaction(TxSent, MustParseMoney("45.00"), MustParseMoney("1.50"), "Sarah Wilson", "Dinner")

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, StatusCompleted, txn.Status)
	assert.False(t, txn.Timestamp.IsZero())
	assert.Equal(t, "Sarah Wilson", txn.Contact)

	another := NewTransaction(TxSent, MustParseMoney("45.00"), 0, "Sarah Wilson", "")
	assert.NotEqual(t, txn.ID, another.ID, "every record gets a unique id")
}

func TestTxKind_IsDebit(t *testing.T) {
	debits := []TxKind{TxSent, TxPaid, TxWithdrawal}
	credits := []TxKind{TxReceived, TxAdded, TxRefund}

	for _, kind := range debits {
		assert.True(t, kind.IsDebit(), "%s", kind)
	}
	for _, kind := range credits {
		assert.False(t, kind.IsDebit(), "%s", kind)
	}
}

func TestPaymentRequest_Payload(t *testing.T) {
	req := NewPaymentRequest(MustParseMoney("25.00"), "John Doe", "Sarah Wilson", "Lunch")

	data, err := req.Encode()
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &payload))

	assert.Equal(t, "payment_request", payload["type"])
	assert.Equal(t, "zwip", payload["app"])
	assert.Equal(t, "USD", payload["currency"])
	assert.Equal(t, 25.0, payload["amount"])
	assert.Equal(t, "John Doe", payload["from"])
	assert.Equal(t, "Sarah Wilson", payload["to"])
	assert.NotEmpty(t, payload["timestamp"])
}
