package wizard

import (
	"github.com/Ambaicci/zwip/internal/fees"
	"github.com/Ambaicci/zwip/internal/model"
)

// DetailField is one payment-method-specific input collected in the
// EnterDetails step.
type DetailField struct {
	Key   string
	Label string
}

// FlowConfig parameterizes a wizard session: what the flow is called, how
// the target is chosen, how fees and limits apply, which extra details are
// collected, and which direction the ledger moves.
type FlowConfig struct {
	Name          string
	Kind          model.TxKind
	Contacts      []model.Contact
	Methods       []model.PaymentMethod
	Details       []DetailField
	Fee           model.FeePolicy
	Min           model.Money
	Max           model.Money
	PerTxnLimit   model.Money
	SelectsMethod bool
	Credit        bool
}

// SendFlow is the person-to-person transfer: tiered fee, $5 minimum,
// $5,000 per-transaction cap.
func SendFlow(contacts []model.Contact) FlowConfig {
	return FlowConfig{
		Name:        "send",
		Kind:        model.TxSent,
		Contacts:    contacts,
		Fee:         fees.P2PTransferPolicy(),
		Min:         model.MustParseMoney("5.00"),
		PerTxnLimit: model.MustParseMoney("5000.00"),
	}
}

// PayFlow is the business payment: max(1.5%, $0.50) fee.
func PayFlow(businesses []model.Contact) FlowConfig {
	return FlowConfig{
		Name:     "pay",
		Kind:     model.TxPaid,
		Contacts: businesses,
		Fee:      fees.BusinessPaymentPolicy(),
	}
}

// TopUpFlow adds money through a funding method; fee and limits come from
// the selected method, and card/bank methods collect payment details.
func TopUpFlow(methods []model.PaymentMethod) FlowConfig {
	return FlowConfig{
		Name:          "topup",
		Kind:          model.TxAdded,
		Methods:       methods,
		SelectsMethod: true,
		Credit:        true,
		Details: []DetailField{
			{Key: "source", Label: "Account or card number"},
		},
	}
}

// WithdrawFlow is the cash-at-agent withdrawal: flat fee, $10 minimum.
func WithdrawFlow(agent model.PaymentMethod) FlowConfig {
	return FlowConfig{
		Name:          "withdraw",
		Kind:          model.TxWithdrawal,
		Methods:       []model.PaymentMethod{agent},
		SelectsMethod: true,
	}
}

// RequestFlow asks a contact for money; the credit is recorded when the
// simulated acceptance settles. No fee on incoming requests.
func RequestFlow(contacts []model.Contact) FlowConfig {
	return FlowConfig{
		Name:     "request",
		Kind:     model.TxReceived,
		Contacts: contacts,
		Credit:   true,
	}
}
