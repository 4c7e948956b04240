package tui

import (
	"context"
	"fmt"

	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/service"
	"github.com/Ambaicci/zwip/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// Prefill seeds a session from command-line flags or a scanned payment
// request, skipping the steps the payload already answers.
type Prefill struct {
	Destination string
	Amount      string
	Note        string
}

// Config wires a wizard flow to its collaborators.
type Config struct {
	Ledger  *ledger.Ledger
	Settler service.Settler
	Flow    wizard.FlowConfig
	Prefill Prefill
}

// Run drives one wizard flow to completion in the terminal and returns the
// terminal result, or nil when the user backed out before committing.
func Run(ctx context.Context, cfg Config) (*wizard.Result, error) {
	if cfg.Ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}

	session := wizard.NewSession(cfg.Flow, cfg.Ledger, cfg.Settler)

	m := newModel(ctx, session, cfg.Ledger)
	if cfg.Prefill.Destination != "" {
		if err := session.SelectDestination(cfg.Prefill.Destination); err != nil {
			return nil, err
		}
		m.amountInput.Focus()
	}
	if cfg.Prefill.Amount != "" {
		session.SetAmount(cfg.Prefill.Amount)
		m.amountInput.SetValue(cfg.Prefill.Amount)
	}
	if cfg.Prefill.Note != "" {
		session.SetNote(cfg.Prefill.Note)
		m.noteInput.SetValue(cfg.Prefill.Note)
	}

	program := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("wizard UI failed: %w", err)
	}

	return session.Result(), nil
}
