package model

import (
	"encoding/json"
	"time"
)

// PaymentRequest is the shareable QR payload for requesting money.
// It is produced for display only; nothing in this app decodes one
// from a camera feed.
type PaymentRequest struct {
	Type      string `json:"type"`
	Amount    Money  `json:"amount"`
	Currency  string `json:"currency"`
	From      string `json:"from"`
	To        string `json:"to"`
	Note      string `json:"note,omitempty"`
	Timestamp string `json:"timestamp"`
	App       string `json:"app"`
}

// NewPaymentRequest builds a payment_request payload from the requesting
// user to the expected payer.
func NewPaymentRequest(amount Money, from, to, note string) PaymentRequest {
	return PaymentRequest{
		Type:      "payment_request",
		Amount:    amount,
		Currency:  "USD",
		From:      from,
		To:        to,
		Note:      note,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		App:       "zwip",
	}
}

// Encode renders the payload as the JSON string embedded in the QR code.
func (p PaymentRequest) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
