// Package tui renders the transaction wizard as an interactive terminal UI.
// The bubbletea model is a thin view over a wizard.Session: every key event
// maps to a session operation and the view is drawn from session state, so
// all transition rules live in one place.
package tui

import (
	"context"

	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the wizard TUI state.
type Model struct {
	ctx          context.Context
	session      *wizard.Session
	ledger       *ledger.Ledger
	detailInputs []textinput.Model
	amountInput  textinput.Model
	destInput    textinput.Model
	noteInput    textinput.Model
	spinner      spinner.Model
	keymap       KeyMap
	cursor       int
	focusIndex   int
	width        int
	height       int
	manualEntry  bool
	quitting     bool
}

func newModel(ctx context.Context, session *wizard.Session, l *ledger.Ledger) Model {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Prompt = "$ "
	amount.CharLimit = 12
	amount.Width = 16
	amount.Focus()

	dest := textinput.New()
	dest.Placeholder = "+1 (555) 000-0000"
	dest.CharLimit = 32
	dest.Width = 28

	note := textinput.New()
	note.Placeholder = "What's it for? (optional)"
	note.CharLimit = 64
	note.Width = 36

	details := make([]textinput.Model, 0, len(session.Flow().Details))
	for _, field := range session.Flow().Details {
		ti := textinput.New()
		ti.Placeholder = field.Label
		ti.CharLimit = 32
		ti.Width = 28
		details = append(details, ti)
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:          ctx,
		session:      session,
		ledger:       l,
		amountInput:  amount,
		destInput:    dest,
		noteInput:    note,
		detailInputs: details,
		spinner:      sp,
		keymap:       DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) && m.session.CanExit() {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case settledMsg:
		// Session is already in Success or Error; just stop the spinner.
		return m, nil

	case confirmRefusedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Step() {
	case wizard.StepSelectTarget:
		return m.updateSelectTarget(msg)
	case wizard.StepEnterAmount:
		return m.updateEnterAmount(msg)
	case wizard.StepEnterDetails:
		return m.updateEnterDetails(msg)
	case wizard.StepConfirm:
		return m.updateConfirm(msg)
	case wizard.StepProcessing:
		// Non-cancellable; swallow input until settled.
		return m, nil
	default:
		// Success or Error: any key exits.
		m.quitting = true
		return m, tea.Quit
	}
}

func (m Model) updateSelectTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.manualEntry {
		switch {
		case key.Matches(msg, m.keymap.Select):
			if err := m.session.SelectDestination(m.destInput.Value()); err == nil {
				return m.enterAmountStep()
			}
			return m, nil
		case key.Matches(msg, m.keymap.Back):
			m.manualEntry = false
			m.destInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.destInput, cmd = m.destInput.Update(msg)
		return m, cmd
	}

	options := m.targetCount()
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < options-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Manual):
		if !m.session.Flow().SelectsMethod {
			m.manualEntry = true
			return m, m.destInput.Focus()
		}
	case key.Matches(msg, m.keymap.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Select):
		if options == 0 {
			return m, nil
		}
		flow := m.session.Flow()
		var err error
		if flow.SelectsMethod {
			err = m.session.SelectMethod(flow.Methods[m.cursor])
		} else {
			err = m.session.SelectContact(flow.Contacts[m.cursor])
		}
		if err == nil {
			return m.enterAmountStep()
		}
	}
	return m, nil
}

func (m Model) enterAmountStep() (tea.Model, tea.Cmd) {
	m.focusIndex = 0
	m.noteInput.Blur()
	return m, m.amountInput.Focus()
}

func (m Model) updateEnterAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		if err := m.session.Back(); err == nil {
			m.amountInput.SetValue("")
			m.noteInput.SetValue("")
			m.cursor = 0
		}
		return m, nil
	case key.Matches(msg, m.keymap.NextFld):
		if m.focusIndex == 0 {
			m.focusIndex = 1
			m.amountInput.Blur()
			return m, m.noteInput.Focus()
		}
		m.focusIndex = 0
		m.noteInput.Blur()
		return m, m.amountInput.Focus()
	case key.Matches(msg, m.keymap.Select):
		m.session.SetNote(m.noteInput.Value())
		if err := m.session.Next(); err != nil {
			return m, nil
		}
		if m.session.Step() == wizard.StepEnterDetails && len(m.detailInputs) > 0 {
			m.focusIndex = 0
			return m, m.detailInputs[0].Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.amountInput, cmd = m.amountInput.Update(msg)
		m.session.SetAmount(m.amountInput.Value())
	} else {
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEnterDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.session.Flow().Details
	switch {
	case key.Matches(msg, m.keymap.Back):
		if err := m.session.Back(); err == nil {
			// Leaving the details step clears entered fields.
			for i := range m.detailInputs {
				m.detailInputs[i].SetValue("")
			}
			m.focusIndex = 0
			return m, m.amountInput.Focus()
		}
		return m, nil
	case key.Matches(msg, m.keymap.NextFld):
		m.detailInputs[m.focusIndex].Blur()
		m.focusIndex = (m.focusIndex + 1) % len(m.detailInputs)
		return m, m.detailInputs[m.focusIndex].Focus()
	case key.Matches(msg, m.keymap.Select):
		for i, field := range fields {
			m.session.SetDetail(field.Key, m.detailInputs[i].Value())
		}
		_ = m.session.Next()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailInputs[m.focusIndex], cmd = m.detailInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		if err := m.session.Back(); err == nil {
			if m.session.Step() == wizard.StepEnterDetails && len(m.detailInputs) > 0 {
				m.focusIndex = 0
				return m, m.detailInputs[0].Focus()
			}
			m.focusIndex = 0
			return m, m.amountInput.Focus()
		}
		return m, nil
	case key.Matches(msg, m.keymap.Select):
		return m, tea.Batch(m.spinner.Tick, m.commit())
	}
	return m, nil
}

// commit runs Confirm in a tea command. Confirm blocks through settlement
// and the ledger mutation, which is exactly the non-cancellable window.
func (m Model) commit() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		result, err := session.Confirm(ctx)
		if err != nil {
			return confirmRefusedMsg{err: err}
		}
		return settledMsg{result: result}
	}
}

func (m Model) targetCount() int {
	flow := m.session.Flow()
	if flow.SelectsMethod {
		return len(flow.Methods)
	}
	return len(flow.Contacts)
}
