package cli

import (
	"fmt"
	"strings"

	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/model"
)

// FormatMoney renders an amount with a dollar sign.
func FormatMoney(m model.Money) string {
	return "$" + m.String()
}

// FormatBalance renders the balance, masking it when hidden.
func FormatBalance(balance model.Money, visible bool) string {
	if !visible {
		return SubtleStyle.Render("••••••")
	}
	return AmountStyle.Render(FormatMoney(balance))
}

// RenderReceipt renders a completed transaction as a boxed receipt.
func RenderReceipt(txn model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "To/From:", txn.Contact)
	fmt.Fprintf(&b, "%-12s %s\n", "Amount:", FormatMoney(txn.Amount))
	if txn.Fee != 0 {
		fmt.Fprintf(&b, "%-12s %s\n", "Fee:", FormatMoney(txn.Fee))
		fmt.Fprintf(&b, "%-12s %s\n", "Total:", FormatMoney(txn.Amount.Add(txn.Fee)))
	}
	if txn.Note != "" {
		fmt.Fprintf(&b, "%-12s %s\n", "Note:", txn.Note)
	}
	fmt.Fprintf(&b, "%-12s %s\n", "Status:", string(txn.Status))
	fmt.Fprintf(&b, "%-12s %s\n", "Date:", txn.Timestamp.Local().Format("Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, "%-12s %s", "Reference:", txn.ID)
	return RenderBox(titleCase(string(txn.Kind)), b.String())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderTransactionsTable renders a transaction view plus its summary.
func RenderTransactionsTable(txns []model.Transaction, summary ledger.Summary) string {
	if len(txns) == 0 {
		return SubtleStyle.Render("No transactions match.")
	}

	var b strings.Builder
	header := fmt.Sprintf("%-12s %-11s %-22s %10s %8s", "DATE", "TYPE", "CONTACT", "AMOUNT", "FEE")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, txn := range txns {
		sign := "+"
		amountStyle := SuccessStyle
		if txn.Kind.IsDebit() {
			sign = "-"
			amountStyle = ErrorStyle
		}
		fee := ""
		if txn.Fee != 0 {
			fee = FormatMoney(txn.Fee)
		}
		row := fmt.Sprintf("%-12s %-11s %-22s %10s %8s",
			txn.Timestamp.Local().Format("Jan 2 15:04"),
			string(txn.Kind),
			truncate(txn.Contact, 22),
			amountStyle.Render(sign+FormatMoney(txn.Amount)),
			fee,
		)
		b.WriteString(TableCellStyle.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf(
		"%d transactions · in %s · out %s · fees %s",
		summary.Count,
		FormatMoney(summary.Incoming),
		FormatMoney(summary.Outgoing),
		FormatMoney(summary.Fees),
	)))
	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
