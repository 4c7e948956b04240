package fees

import (
	"testing"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFee_P2PTiers(t *testing.T) {
	policy := P2PTransferPolicy()

	tests := []struct {
		name    string
		amount  string
		wantFee string
	}{
		{name: "small amount pays flat tier fee", amount: "50.00", wantFee: "1.50"},
		{name: "tier boundary at 100 still flat", amount: "100.00", wantFee: "1.50"},
		{name: "mid tier pays 1.5 percent", amount: "500.00", wantFee: "7.50"},
		{name: "upper mid tier boundary", amount: "1000.00", wantFee: "15.00"},
		{name: "large amounts pay 1 percent", amount: "1500.00", wantFee: "15.00"},
		{name: "five thousand pays 1 percent", amount: "5000.00", wantFee: "50.00"},
		{name: "tiny amount still pays flat tier fee", amount: "1.00", wantFee: "1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := ComputeFee(model.MustParseMoney(tt.amount), policy)
			assert.Equal(t, model.MustParseMoney(tt.wantFee), fee)
		})
	}
}

func TestComputeFee_BusinessPayment(t *testing.T) {
	policy := BusinessPaymentPolicy()

	// $25.00 * 1.5% = $0.375, below the $0.50 floor.
	fee := ComputeFee(model.MustParseMoney("25.00"), policy)
	assert.Equal(t, model.MustParseMoney("0.50"), fee)

	// $100.00 * 1.5% = $1.50, above the floor.
	fee = ComputeFee(model.MustParseMoney("100.00"), policy)
	assert.Equal(t, model.MustParseMoney("1.50"), fee)
}

func TestComputeFee_FlatMethod(t *testing.T) {
	policy := model.FlatFee(model.MustParseMoney("1.50"))

	for _, amount := range []string{"10.00", "500.00", "999.99"} {
		fee := ComputeFee(model.MustParseMoney(amount), policy)
		assert.Equal(t, model.MustParseMoney("1.50"), fee, "flat fee for %s", amount)
	}
}

func TestComputeFee_NeverNegative(t *testing.T) {
	policies := []model.FeePolicy{
		P2PTransferPolicy(),
		BusinessPaymentPolicy(),
		model.FlatFee(model.MustParseMoney("1.50")),
		model.PercentFee(decimal.NewFromFloat(0.029), 0),
		model.PercentFee(decimal.Zero, 0),
	}
	amounts := []string{"0.01", "1", "99.99", "100", "1000", "49999.99"}

	for _, policy := range policies {
		for _, amount := range amounts {
			fee := ComputeFee(model.MustParseMoney(amount), policy)
			assert.GreaterOrEqual(t, int64(fee), int64(0))
		}
	}
}

func TestComputeFee_ZeroAmountHasNoFee(t *testing.T) {
	assert.Equal(t, model.Money(0), ComputeFee(0, P2PTransferPolicy()))
	assert.Equal(t, model.Money(0), ComputeFee(0, model.FlatFee(model.MustParseMoney("1.50"))))
}

func TestComputeFee_RoundsHalfUpToCents(t *testing.T) {
	// $33.50 * 1.5% = $0.5025 -> $0.50; $37.00 * 1.5% = $0.555 -> $0.56.
	policy := model.PercentFee(decimal.NewFromFloat(0.015), 0)
	assert.Equal(t, model.MustParseMoney("0.50"), ComputeFee(model.MustParseMoney("33.50"), policy))
	assert.Equal(t, model.MustParseMoney("0.56"), ComputeFee(model.MustParseMoney("37.00"), policy))
}

func TestComputeTotal(t *testing.T) {
	amount := model.MustParseMoney("60.00")
	fee := model.MustParseMoney("1.50")
	total := ComputeTotal(amount, fee)

	assert.Equal(t, model.MustParseMoney("61.50"), total)

	// Cent-exact round trip through formatting.
	parsed, err := model.ParseMoney(total.String())
	require.NoError(t, err)
	assert.Equal(t, total, parsed)
}

func TestValidateAmount_ShortCircuitOrder(t *testing.T) {
	policy := P2PTransferPolicy()
	limits := Limits{
		Min:    model.MustParseMoney("5.00"),
		PerTxn: model.MustParseMoney("5000.00"),
	}

	tests := []struct {
		wantErr error
		name    string
		amount  string
		balance string
	}{
		{
			name:    "zero amount is invalid before anything else",
			amount:  "0",
			balance: "100.00",
			wantErr: ErrInvalidAmount,
		},
		{
			name: "below minimum wins over insufficient balance",
			// $2 is both below the $5 minimum and more than the balance.
			amount:  "2.00",
			balance: "1.00",
			wantErr: ErrBelowMinimum,
		},
		{
			name:    "per-transaction cap wins over insufficient balance",
			amount:  "6000.00",
			balance: "10.00",
			wantErr: ErrExceedsPerTxnLimit,
		},
		{
			name:    "balance checked last",
			amount:  "100.00",
			balance: "100.00", // fee 1.50 pushes total to 101.50
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "valid amount passes",
			amount:  "60.00",
			balance: "100.00", // total 61.50 <= 100
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(model.MustParseMoney(tt.amount), policy, limits, model.MustParseMoney(tt.balance))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount_MethodLimits(t *testing.T) {
	// Cash-agent withdrawal: flat $1.50 fee, $10 minimum.
	policy := model.FlatFee(model.MustParseMoney("1.50"))
	limits := Limits{Min: model.MustParseMoney("10.00"), Max: model.MustParseMoney("1000.00")}

	// Below minimum is rejected regardless of a comfortable balance.
	err := ValidateAmount(model.MustParseMoney("5.00"), policy, limits, model.MustParseMoney("10000.00"))
	assert.ErrorIs(t, err, ErrBelowMinimum)

	err = ValidateAmount(model.MustParseMoney("2000.00"), policy, limits, model.MustParseMoney("10000.00"))
	assert.ErrorIs(t, err, ErrAboveMaximum)

	err = ValidateAmount(model.MustParseMoney("500.00"), policy, limits, model.MustParseMoney("10000.00"))
	assert.NoError(t, err)
}

func TestValidateLimits_NoBalanceCheck(t *testing.T) {
	// Credit flows validate limits only; a zero balance never blocks them.
	err := ValidateLimits(model.MustParseMoney("50.00"), Limits{Min: model.MustParseMoney("5.00")})
	assert.NoError(t, err)

	err = ValidateLimits(model.MustParseMoney("-3.00"), Limits{})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestValidate_ReferentialTransparency(t *testing.T) {
	policy := P2PTransferPolicy()
	amount := model.MustParseMoney("123.45")

	first := ComputeFee(amount, policy)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ComputeFee(amount, policy))
	}
}
