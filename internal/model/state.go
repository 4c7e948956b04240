package model

import "time"

// User is the wallet owner's profile.
type User struct {
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
}

// WalletState is the full persisted wallet: profile, balance, visibility
// flag and the transaction log, most recent first. It is serialized as a
// single JSON blob under a fixed storage key.
type WalletState struct {
	User             *User         `json:"user"`
	Transactions     []Transaction `json:"transactions"`
	Balance          Money         `json:"balance"`
	BalanceIsVisible bool          `json:"balanceIsVisible"`
}

// SeedState is the demo wallet a fresh install starts with.
func SeedState() WalletState {
	return WalletState{
		User: &User{
			PhoneNumber: "+1 (555) 123-4567",
			Name:        "John Doe",
			Email:       "john.doe@example.com",
		},
		Balance:          MustParseMoney("1250.75"),
		BalanceIsVisible: false,
		Transactions: []Transaction{
			{
				ID:        "seed-1",
				Kind:      TxReceived,
				Amount:    MustParseMoney("50.00"),
				Contact:   "John Doe",
				Note:      "Lunch",
				Timestamp: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
				Status:    StatusCompleted,
			},
			{
				ID:        "seed-2",
				Kind:      TxSent,
				Amount:    MustParseMoney("25.00"),
				Contact:   "Sarah Smith",
				Note:      "Coffee",
				Timestamp: time.Date(2024, 1, 15, 12, 15, 0, 0, time.UTC),
				Status:    StatusCompleted,
			},
			{
				ID:        "seed-3",
				Kind:      TxReceived,
				Amount:    MustParseMoney("100.00"),
				Contact:   "Mike Johnson",
				Note:      "Birthday gift",
				Timestamp: time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
				Status:    StatusCompleted,
			},
		},
	}
}
