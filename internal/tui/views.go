package tui

import (
	"fmt"
	"strings"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cli.PrimaryColor)
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))
	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

// View renders the current wizard step.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.session.Step() {
	case wizard.StepSelectTarget:
		body = m.viewSelectTarget()
	case wizard.StepEnterAmount:
		body = m.viewEnterAmount()
	case wizard.StepEnterDetails:
		body = m.viewEnterDetails()
	case wizard.StepConfirm:
		body = m.viewConfirm()
	case wizard.StepProcessing:
		body = m.viewProcessing()
	case wizard.StepSuccess:
		body = m.viewSuccess()
	case wizard.StepError:
		body = m.viewError()
	}

	title := cli.FormatTitle(m.title())
	return lipgloss.JoinVertical(lipgloss.Left, title, body) + "\n"
}

func (m Model) title() string {
	switch m.session.Flow().Name {
	case "send":
		return "Send Money"
	case "pay":
		return "Pay a Business"
	case "topup":
		return "Add Money"
	case "withdraw":
		return "Cash at Agent"
	case "request":
		return "Request Money"
	default:
		return "Zwip"
	}
}

func (m Model) viewSelectTarget() string {
	var b strings.Builder

	if m.manualEntry {
		b.WriteString("Enter a destination:\n\n")
		b.WriteString(m.destInput.View())
		b.WriteString(helpStyle.Render("\nEnter continue · Esc back to list"))
		return b.String()
	}

	flow := m.session.Flow()
	if flow.SelectsMethod {
		b.WriteString("Choose a payment method:\n\n")
		for i, method := range flow.Methods {
			line := fmt.Sprintf("%s  %s · %s", method.Name, method.Description, method.ProcessingTime)
			b.WriteString(m.listItem(i, line))
		}
		b.WriteString(helpStyle.Render("↑/↓ move · Enter select · Esc cancel"))
		return b.String()
	}

	b.WriteString("Choose a contact:\n\n")
	for i, contact := range flow.Contacts {
		line := fmt.Sprintf("%s  %s", contact.Name, contact.Phone)
		b.WriteString(m.listItem(i, line))
	}
	b.WriteString(helpStyle.Render("↑/↓ move · Enter select · m manual entry · Esc cancel"))
	return b.String()
}

func (m Model) listItem(i int, line string) string {
	if i == m.cursor {
		return selectedItemStyle.Render("› "+line) + "\n"
	}
	return itemStyle.Render("  "+line) + "\n"
}

func (m Model) viewEnterAmount() string {
	var b strings.Builder

	fmt.Fprintf(&b, "To: %s\n", cli.BoldStyle.Render(m.session.Counterparty().DisplayName()))
	fmt.Fprintf(&b, "Balance: %s\n\n", cli.FormatMoney(m.ledger.Balance()))

	b.WriteString(m.amountInput.View())
	b.WriteString("\n")
	b.WriteString(m.noteInput.View())
	b.WriteString("\n\n")

	if m.session.Amount().IsPositive() {
		fmt.Fprintf(&b, "Fee: %s   Total: %s\n",
			cli.FormatMoney(m.session.Fee()),
			cli.AmountStyle.Render(cli.FormatMoney(m.session.Total())))
	}

	if err := m.session.AmountError(); err != nil && m.amountInput.Value() != "" {
		b.WriteString(cli.FormatError(err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab switch field · Enter continue · Esc back"))
	return b.String()
}

func (m Model) viewEnterDetails() string {
	var b strings.Builder
	b.WriteString("Payment details:\n\n")
	for i := range m.detailInputs {
		b.WriteString(m.detailInputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Tab next field · Enter continue · Esc back"))
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s\n", "To:", m.session.Counterparty().DisplayName())
	fmt.Fprintf(&b, "%-10s %s\n", "Amount:", cli.FormatMoney(m.session.Amount()))
	fmt.Fprintf(&b, "%-10s %s\n", "Fee:", cli.FormatMoney(m.session.Fee()))
	fmt.Fprintf(&b, "%-10s %s", "Total:", cli.AmountStyle.Render(cli.FormatMoney(m.session.Total())))
	if note := m.session.Note(); note != "" {
		fmt.Fprintf(&b, "\n%-10s %s", "Note:", note)
	}

	box := cli.RenderBox("Confirm", b.String())
	if err := m.session.AmountError(); err != nil {
		box += "\n" + cli.FormatError(err.Error())
	}
	return box + helpStyle.Render("\nEnter confirm · Esc back")
}

func (m Model) viewProcessing() string {
	return fmt.Sprintf("%s Processing %s · do not close\n%s",
		m.spinner.View(),
		cli.FormatMoney(m.session.Total()),
		helpStyle.Render("This transfer cannot be cancelled."))
}

func (m Model) viewSuccess() string {
	result := m.session.Result()
	if result == nil {
		return ""
	}
	return cli.FormatSuccess("Transaction complete") + "\n\n" +
		cli.RenderReceipt(result.Record) +
		helpStyle.Render("\nPress any key to close")
}

func (m Model) viewError() string {
	result := m.session.Result()
	if result == nil || result.Err == nil {
		return cli.FormatError("Transaction failed")
	}
	return cli.FormatError(result.Err.Error()) + "\n" +
		helpStyle.Render("Start the flow again to retry. Press any key to close.")
}
