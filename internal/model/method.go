package model

import "github.com/shopspring/decimal"

// MethodID identifies a payment/funding channel.
type MethodID string

// The closed set of payment methods the wallet knows about.
const (
	MethodBankTransfer MethodID = "bank_transfer"
	MethodCard         MethodID = "card"
	MethodMobileMoney  MethodID = "mobile_money"
	MethodCrypto       MethodID = "crypto"
	MethodCashAgent    MethodID = "cash_agent"
	MethodCashDeposit  MethodID = "cash_deposit"
)

// FeeKind selects how a fee policy computes its fee.
type FeeKind int

const (
	// FeeFlat charges a fixed fee regardless of amount.
	FeeFlat FeeKind = iota
	// FeePercent charges amount*Rate, floored at MinFee.
	FeePercent
	// FeeTiered charges per-tier flat or percentage fees, floored at MinFee.
	FeeTiered
)

// FeeTier is one band of a tiered policy. UpTo is the inclusive upper bound
// of the band; the last tier uses UpTo == 0 to mean "no upper bound".
// Exactly one of Flat or Rate applies per tier.
type FeeTier struct {
	UpTo Money
	Flat Money
	Rate decimal.Decimal
}

// FeePolicy describes how a method or flow charges fees. Immutable,
// defined at configuration time.
type FeePolicy struct {
	Rate   decimal.Decimal
	Tiers  []FeeTier
	Kind   FeeKind
	Flat   Money
	MinFee Money
}

// FlatFee builds a flat-fee policy.
func FlatFee(flat Money) FeePolicy {
	return FeePolicy{Kind: FeeFlat, Flat: flat}
}

// PercentFee builds a percentage policy with an optional minimum-fee floor.
func PercentFee(rate decimal.Decimal, minFee Money) FeePolicy {
	return FeePolicy{Kind: FeePercent, Rate: rate, MinFee: minFee}
}

// TieredFee builds a tiered policy with a minimum-fee floor applied to
// every tier's result.
func TieredFee(minFee Money, tiers ...FeeTier) FeePolicy {
	return FeePolicy{Kind: FeeTiered, Tiers: tiers, MinFee: minFee}
}

// PaymentMethod is one entry in the configured method catalog.
type PaymentMethod struct {
	ID             MethodID
	Name           string
	Description    string
	ProcessingTime string
	Fee            FeePolicy
	Min            Money
	Max            Money
}
