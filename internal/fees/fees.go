// Package fees computes transaction fees and validates amounts against
// method limits and available balance. Every function here is pure: same
// inputs, same outputs, no ledger or wizard required.
package fees

import (
	"errors"
	"fmt"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/shopspring/decimal"
)

// Validation errors, in the order the checks run.
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBelowMinimum        = errors.New("amount below minimum")
	ErrAboveMaximum        = errors.New("amount above maximum")
	ErrExceedsPerTxnLimit  = errors.New("amount exceeds per-transaction limit")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// P2PTransferPolicy is the tiered person-to-person send fee:
// amounts up to 100 pay a flat 1.50, up to 1000 pay 1.5%, above that 1.0%,
// floored at 0.50 in every tier.
func P2PTransferPolicy() model.FeePolicy {
	return model.TieredFee(model.MustParseMoney("0.50"),
		model.FeeTier{UpTo: model.MustParseMoney("100"), Flat: model.MustParseMoney("1.50")},
		model.FeeTier{UpTo: model.MustParseMoney("1000"), Rate: decimal.NewFromFloat(0.015)},
		model.FeeTier{Rate: decimal.NewFromFloat(0.01)},
	)
}

// BusinessPaymentPolicy is the business payment fee: max(1.5%, 0.50).
func BusinessPaymentPolicy() model.FeePolicy {
	return model.PercentFee(decimal.NewFromFloat(0.015), model.MustParseMoney("0.50"))
}

// ComputeFee returns the fee for amount under the given policy, rounded
// half-up to cents. Non-positive amounts carry no fee.
func ComputeFee(amount model.Money, policy model.FeePolicy) model.Money {
	if !amount.IsPositive() {
		return 0
	}

	var fee model.Money
	switch policy.Kind {
	case model.FeeFlat:
		return policy.Flat
	case model.FeePercent:
		fee = model.MoneyFromDecimal(amount.Decimal().Mul(policy.Rate))
	case model.FeeTiered:
		fee = tieredFee(amount, policy.Tiers)
	}

	if fee < policy.MinFee {
		fee = policy.MinFee
	}
	return fee
}

func tieredFee(amount model.Money, tiers []model.FeeTier) model.Money {
	for _, tier := range tiers {
		if tier.UpTo != 0 && amount > tier.UpTo {
			continue
		}
		if tier.Flat != 0 {
			return tier.Flat
		}
		return model.MoneyFromDecimal(amount.Decimal().Mul(tier.Rate))
	}
	return 0
}

// ComputeTotal returns amount + fee. Both operands are already in cents,
// so the sum is exact.
func ComputeTotal(amount, fee model.Money) model.Money {
	return amount.Add(fee)
}

// Limits are the bounds a flow enforces on a single transaction. Min and
// Max come from the selected method (or the flow itself); PerTxn is an
// optional flow-level cap checked after Max, zero meaning none.
type Limits struct {
	Min    model.Money
	Max    model.Money
	PerTxn model.Money
}

// ValidateLimits checks that amount is positive and within the flow's
// bounds: minimum, maximum, then the optional per-transaction cap. The
// first failing check wins; later checks are skipped.
func ValidateLimits(amount model.Money, limits Limits) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	if limits.Min != 0 && amount < limits.Min {
		return fmt.Errorf("%w: minimum amount is $%s", ErrBelowMinimum, limits.Min)
	}
	if limits.Max != 0 && amount > limits.Max {
		return fmt.Errorf("%w: maximum amount is $%s", ErrAboveMaximum, limits.Max)
	}
	if limits.PerTxn != 0 && amount > limits.PerTxn {
		return fmt.Errorf("%w: limit is $%s per transaction", ErrExceedsPerTxnLimit, limits.PerTxn)
	}
	return nil
}

// ValidateAmount runs ValidateLimits and then checks that amount plus its
// fee is covered by balance. Used by debit flows; credit flows validate
// limits only.
func ValidateAmount(amount model.Money, policy model.FeePolicy, limits Limits, balance model.Money) error {
	if err := ValidateLimits(amount, limits); err != nil {
		return err
	}
	if total := ComputeTotal(amount, ComputeFee(amount, policy)); total > balance {
		return fmt.Errorf("%w: total $%s exceeds available balance $%s", ErrInsufficientBalance, total, balance)
	}
	return nil
}
