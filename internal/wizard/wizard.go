// Package wizard implements the multi-step transaction flow shared by the
// send, pay, top-up, withdraw and request screens: one state machine,
// parameterized by a per-flow configuration.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ambaicci/zwip/internal/common"
	"github.com/Ambaicci/zwip/internal/fees"
	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/service"
)

// Step is the wizard's current state.
type Step int

// Wizard steps, in forward order. EnterDetails is skipped for flows with no
// detail fields.
const (
	StepSelectTarget Step = iota
	StepEnterAmount
	StepEnterDetails
	StepConfirm
	StepProcessing
	StepSuccess
	StepError
)

// String names the step for logging and view titles.
func (s Step) String() string {
	switch s {
	case StepSelectTarget:
		return "select_target"
	case StepEnterAmount:
		return "enter_amount"
	case StepEnterDetails:
		return "enter_details"
	case StepConfirm:
		return "confirm"
	case StepProcessing:
		return "processing"
	case StepSuccess:
		return "success"
	case StepError:
		return "error"
	default:
		return "unknown"
	}
}

// Transition and guard errors.
var (
	ErrNoTarget          = errors.New("no counterparty or method selected")
	ErrWrongStep         = errors.New("operation not valid in current step")
	ErrCannotExit        = errors.New("cannot exit while processing")
	ErrAlreadyCommitted  = errors.New("transaction already committed")
	ErrMissingDetails    = errors.New("payment details incomplete")
	ErrProcessingFailed  = errors.New("processing failed")
	ErrSessionTerminated = errors.New("session is in a terminal state")
)

// Result reports how a finished wizard session ended.
type Result struct {
	Err    error
	Record model.Transaction
}

// Session is one transient run of a flow. Created when the user enters the
// flow, discarded on exit; never reused after Success or Error.
type Session struct {
	ledger       *ledger.Ledger
	settler      service.Settler
	result       *Result
	details      map[string]string
	rawAmount    string
	note         string
	flow         FlowConfig
	counterparty model.Counterparty
	method       *model.PaymentMethod
	step         Step
	amount       model.Money
	fee          model.Money
	total        model.Money
	amountErr    error
	committed    bool
}

// NewSession starts a flow against the given ledger and settler.
func NewSession(flow FlowConfig, l *ledger.Ledger, settler service.Settler) *Session {
	return &Session{
		flow:    flow,
		ledger:  l,
		settler: settler,
		step:    StepSelectTarget,
		details: make(map[string]string),
	}
}

// Step returns the current step.
func (s *Session) Step() Step {
	return s.step
}

// Flow returns the flow configuration the session runs.
func (s *Session) Flow() FlowConfig {
	return s.flow
}

// Counterparty returns the selected counterparty (zero until selected).
func (s *Session) Counterparty() model.Counterparty {
	return s.counterparty
}

// Method returns the selected payment method, or nil for contact flows.
func (s *Session) Method() *model.PaymentMethod {
	return s.method
}

// Amount, Fee and Total return the parsed amount and its computed charges.
func (s *Session) Amount() model.Money { return s.amount }

// Fee returns the fee computed for the current amount.
func (s *Session) Fee() model.Money { return s.fee }

// Total returns amount plus fee.
func (s *Session) Total() model.Money { return s.total }

// RawAmount returns the amount input exactly as typed.
func (s *Session) RawAmount() string { return s.rawAmount }

// Note returns the optional note.
func (s *Session) Note() string { return s.note }

// AmountError returns the current inline validation error, or nil.
func (s *Session) AmountError() error { return s.amountErr }

// Result returns the terminal result once the session reached Success or
// Error, nil before that.
func (s *Session) Result() *Result { return s.result }

// CanExit reports whether the user may abandon the session right now.
// Processing must run to completion; every other step can be exited.
func (s *Session) CanExit() bool {
	return s.step != StepProcessing
}

// SelectContact picks a known contact as counterparty and advances to
// EnterAmount. Only valid in SelectTarget for flows that take a counterparty.
func (s *Session) SelectContact(c model.Contact) error {
	return s.selectTarget(model.CounterpartyFromContact(c), nil)
}

// SelectDestination picks a free-form destination (phone number, business
// code) and advances to EnterAmount.
func (s *Session) SelectDestination(dest string) error {
	cp := model.CounterpartyFromString(dest)
	if cp.IsZero() {
		return ErrNoTarget
	}
	return s.selectTarget(cp, nil)
}

// SelectMethod picks a payment method and advances to EnterAmount. Only
// valid for flows whose target is a method (top-up, withdraw).
func (s *Session) SelectMethod(m model.PaymentMethod) error {
	if !s.flow.SelectsMethod {
		return fmt.Errorf("%w: flow %s selects a counterparty", ErrWrongStep, s.flow.Name)
	}
	return s.selectTarget(model.CounterpartyFromString(m.Name), &m)
}

func (s *Session) selectTarget(cp model.Counterparty, m *model.PaymentMethod) error {
	if s.step != StepSelectTarget {
		return fmt.Errorf("%w: step %s", ErrWrongStep, s.step)
	}
	if s.flow.SelectsMethod && m == nil {
		return ErrNoTarget
	}
	if cp.IsZero() {
		return ErrNoTarget
	}

	s.counterparty = cp
	s.method = m
	s.step = StepEnterAmount
	s.revalidate()
	return nil
}

// SetAmount updates the raw amount input, recomputing fee, total and the
// inline validation error. It never advances the step.
func (s *Session) SetAmount(raw string) {
	s.rawAmount = raw
	s.revalidate()
}

// SetNote updates the optional note.
func (s *Session) SetNote(note string) {
	s.note = note
}

// SetDetail records one payment-detail field (card number, bank account...).
func (s *Session) SetDetail(field, value string) {
	s.details[field] = value
}

// Detail returns a previously entered detail field.
func (s *Session) Detail(field string) string {
	return s.details[field]
}

// revalidate reparses the raw amount and recomputes fee/total/error against
// the current ledger balance.
func (s *Session) revalidate() {
	s.amount, s.fee, s.total = 0, 0, 0

	amount, err := model.ParseMoney(s.rawAmount)
	if err != nil {
		if s.rawAmount != "" {
			s.amountErr = fmt.Errorf("%w: %q is not a number", fees.ErrInvalidAmount, s.rawAmount)
		} else {
			s.amountErr = fees.ErrInvalidAmount
		}
		return
	}

	policy := s.policy()
	s.amount = amount
	s.fee = fees.ComputeFee(amount, policy)
	s.total = fees.ComputeTotal(amount, s.fee)

	if s.flow.Credit {
		s.amountErr = fees.ValidateLimits(amount, s.limits())
	} else {
		s.amountErr = fees.ValidateAmount(amount, policy, s.limits(), s.ledger.Balance())
	}
}

func (s *Session) policy() model.FeePolicy {
	if s.method != nil {
		return s.method.Fee
	}
	return s.flow.Fee
}

func (s *Session) limits() fees.Limits {
	l := fees.Limits{Min: s.flow.Min, Max: s.flow.Max, PerTxn: s.flow.PerTxnLimit}
	if s.method != nil {
		l.Min, l.Max = s.method.Min, s.method.Max
	}
	return l
}

// Next advances one step forward. From EnterAmount it is refused while the
// amount fails validation; from Confirm use Confirm instead.
func (s *Session) Next() error {
	switch s.step {
	case StepEnterAmount:
		if s.amountErr != nil {
			return s.amountErr
		}
		if len(s.flow.Details) > 0 {
			s.step = StepEnterDetails
		} else {
			s.step = StepConfirm
		}
		return nil
	case StepEnterDetails:
		for _, field := range s.flow.Details {
			if s.details[field.Key] == "" {
				return fmt.Errorf("%w: %s", ErrMissingDetails, field.Label)
			}
		}
		s.step = StepConfirm
		return nil
	default:
		return fmt.Errorf("%w: step %s", ErrWrongStep, s.step)
	}
}

// Back moves exactly one step backward, clearing any state captured only in
// the step being left so stale partial input never leaks into a retried
// flow. Refused while processing or after a terminal step.
func (s *Session) Back() error {
	switch s.step {
	case StepEnterAmount:
		s.counterparty = model.Counterparty{}
		s.method = nil
		s.rawAmount = ""
		s.revalidate()
		s.step = StepSelectTarget
	case StepEnterDetails:
		s.details = make(map[string]string)
		s.step = StepEnterAmount
	case StepConfirm:
		if len(s.flow.Details) > 0 {
			s.step = StepEnterDetails
		} else {
			s.step = StepEnterAmount
		}
	case StepProcessing:
		return ErrCannotExit
	case StepSuccess, StepError:
		return ErrSessionTerminated
	default:
		return fmt.Errorf("%w: step %s", ErrWrongStep, s.step)
	}
	return nil
}

// Confirm runs the Processing step to completion: it re-validates against a
// fresh ledger balance (other flows may have mutated it since EnterAmount),
// performs the settlement, and commits the ledger mutation exactly once.
// The session lands in Success or Error and the result is returned. ctx is
// honored only before settlement starts; a failed session cannot be
// resubmitted.
func (s *Session) Confirm(ctx context.Context) (Result, error) {
	if s.step != StepConfirm {
		return Result{}, fmt.Errorf("%w: step %s", ErrWrongStep, s.step)
	}
	if s.committed {
		return Result{}, ErrAlreadyCommitted
	}

	// Re-validate with a fresh balance; don't trust the cached value.
	s.revalidate()
	if s.amountErr != nil {
		return Result{}, s.amountErr
	}

	s.step = StepProcessing
	s.committed = true

	common.LogDebug("settling transaction", common.Fields{
		"flow":   s.flow.Name,
		"amount": s.amount.String(),
		"total":  s.total.String(),
	})

	if s.settler != nil {
		if err := s.settler.Settle(ctx, s.total); err != nil {
			return s.finish(model.Transaction{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err))
		}
	}

	var record model.Transaction
	var err error
	if s.flow.Credit {
		record, err = s.ledger.Credit(ctx, s.flow.Kind, s.amount, s.fee, s.counterparty.DisplayName(), s.note)
	} else {
		record, err = s.ledger.Debit(ctx, s.flow.Kind, s.amount, s.fee, s.counterparty.DisplayName(), s.note)
	}
	if err != nil {
		return s.finish(model.Transaction{}, fmt.Errorf("%w: %v", ErrProcessingFailed, err))
	}
	return s.finish(record, nil)
}

func (s *Session) finish(record model.Transaction, err error) (Result, error) {
	s.result = &Result{Record: record, Err: err}
	if err != nil {
		s.step = StepError
		common.LogError(err, "transaction failed", common.Fields{"flow": s.flow.Name})
		return *s.result, nil
	}
	s.step = StepSuccess
	return *s.result, nil
}
