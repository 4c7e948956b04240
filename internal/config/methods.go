package config

import (
	"fmt"

	"github.com/Ambaicci/zwip/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Viper keys for method catalog overrides. Each method's fee rate, flat
// fee, and min/max limits can be overridden from config.yaml under
// methods.<id>.{rate,flat,min,max}.
const methodsKeyPrefix = "methods"

type methodDefault struct {
	id             model.MethodID
	name           string
	description    string
	processingTime string
	rate           float64 // percentage methods
	flat           string  // flat-fee methods
	minFee         string
	min            string
	max            string
}

// The funding catalog the original product ships with. Illustrative
// business rules, not confirmed product requirements; all overridable.
var fundingDefaults = []methodDefault{
	{
		id: model.MethodCard, name: "Credit/Debit Card",
		description:    "Visa, Mastercard, Amex",
		processingTime: "Instant",
		rate:           0.029, min: "5", max: "5000",
	},
	{
		id: model.MethodBankTransfer, name: "Bank Transfer",
		description:    "Direct from your bank account",
		processingTime: "1-3 business days",
		rate:           0, min: "10", max: "10000",
	},
	{
		id: model.MethodMobileMoney, name: "Mobile Money",
		description:    "M-Pesa, MTN, Airtel",
		processingTime: "Instant",
		rate:           0.015, min: "1", max: "1000",
	},
	{
		id: model.MethodCrypto, name: "Cryptocurrency",
		description:    "BTC, ETH, USDC",
		processingTime: "10-30 minutes",
		rate:           0.01, min: "10", max: "50000",
	},
	{
		id: model.MethodCashDeposit, name: "Cash Deposit",
		description:    "Deposit cash at a partner location",
		processingTime: "Instant at location",
		flat:           "1.50", min: "5", max: "1000",
	},
}

var agentDefault = methodDefault{
	id: model.MethodCashAgent, name: "Cash at Agent",
	description:    "Withdraw cash at a nearby agent",
	processingTime: "Instant at location",
	flat:           "1.50", min: "10", max: "1000",
}

// FundingMethods returns the top-up method catalog with any viper
// overrides applied.
func FundingMethods() []model.PaymentMethod {
	methods := make([]model.PaymentMethod, 0, len(fundingDefaults))
	for _, d := range fundingDefaults {
		methods = append(methods, buildMethod(d))
	}
	return methods
}

// AgentMethod returns the cash-at-agent withdrawal method.
func AgentMethod() model.PaymentMethod {
	return buildMethod(agentDefault)
}

func buildMethod(d methodDefault) model.PaymentMethod {
	rate := d.rate
	if key := methodKey(d.id, "rate"); viper.IsSet(key) {
		rate = viper.GetFloat64(key)
	}
	flat := d.flat
	if key := methodKey(d.id, "flat"); viper.IsSet(key) {
		flat = viper.GetString(key)
	}
	minAmount := stringOverride(d.id, "min", d.min)
	maxAmount := stringOverride(d.id, "max", d.max)

	var policy model.FeePolicy
	if flat != "" {
		policy = model.FlatFee(model.MustParseMoney(flat))
	} else {
		var minFee model.Money
		if d.minFee != "" {
			minFee = model.MustParseMoney(d.minFee)
		}
		policy = model.PercentFee(decimal.NewFromFloat(rate), minFee)
	}

	return model.PaymentMethod{
		ID:             d.id,
		Name:           d.name,
		Description:    d.description,
		ProcessingTime: d.processingTime,
		Fee:            policy,
		Min:            model.MustParseMoney(minAmount),
		Max:            model.MustParseMoney(maxAmount),
	}
}

func stringOverride(id model.MethodID, field, fallback string) string {
	if key := methodKey(id, field); viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func methodKey(id model.MethodID, field string) string {
	return fmt.Sprintf("%s.%s.%s", methodsKeyPrefix, id, field)
}
