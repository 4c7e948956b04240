package main

import (
	"bufio"
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/Ambaicci/zwip/internal/common"
	"github.com/Ambaicci/zwip/internal/config"
	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/service"
	"github.com/Ambaicci/zwip/internal/storage"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/viper"
)

// openLedger opens the wallet database, migrates it and loads the ledger.
// The returned cleanup closes the store.
func openLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open wallet database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to migrate wallet database: %w", err)
	}

	l, err := ledger.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return l, func() { _ = store.Close() }, nil
}

// settleDelay returns the configured simulated settlement duration.
func settleDelay() time.Duration {
	d := viper.GetDuration("settle.delay")
	if d <= 0 {
		d = 2 * time.Second
	}
	return d
}

// checkPIN gates mutating commands behind the demo PIN when security.pin is
// configured. A constant compare of a hardcoded value; this is a mockup, not
// an auth system.
func checkPIN() error {
	pin := viper.GetString("security.pin")
	if pin == "" {
		return nil
	}

	fmt.Print(cli.FormatPrompt("PIN"))
	reader := bufio.NewReader(os.Stdin)
	entered, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read PIN: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(entered)), []byte(pin)) != 1 {
		return common.NewUserError("Incorrect PIN", common.ErrWrongPIN)
	}
	return nil
}

// runFlow launches a wizard flow: interactively through the TUI, or
// straight through the session when the flags fully specify the transaction
// (destination + amount + --yes).
func runFlow(ctx context.Context, flow wizard.FlowConfig, prefill tui.Prefill, assumeYes bool) error {
	if err := checkPIN(); err != nil {
		return err
	}

	l, closeStore, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if assumeYes && prefill.Destination != "" && prefill.Amount != "" {
		return runFlowDirect(ctx, flow, prefill, l)
	}

	settler := wizard.DelaySettler{Delay: settleDelay()}
	result, err := tui.Run(ctx, tui.Config{
		Ledger:  l,
		Settler: settler,
		Flow:    flow,
		Prefill: prefill,
	})
	if err != nil {
		return err
	}
	if result == nil {
		// User backed out before committing.
		return nil
	}
	if result.Err != nil {
		return common.NewUserError("Transaction failed", result.Err)
	}
	return nil
}

// runFlowDirect drives the wizard session without the TUI, rendering the
// settlement as a progress bar and the outcome as a receipt.
func runFlowDirect(ctx context.Context, flow wizard.FlowConfig, prefill tui.Prefill, l *ledger.Ledger) error {
	var settler service.Settler = cli.ProgressSettler{Writer: os.Stderr, Delay: settleDelay()}
	session := wizard.NewSession(flow, l, settler)

	if err := session.SelectDestination(prefill.Destination); err != nil {
		return err
	}
	session.SetAmount(prefill.Amount)
	session.SetNote(prefill.Note)
	if err := session.Next(); err != nil {
		return common.NewUserError("Invalid amount", err)
	}
	if session.Step() == wizard.StepEnterDetails {
		return fmt.Errorf("flow %s requires interactive mode for payment details", flow.Name)
	}

	result, err := session.Confirm(ctx)
	if err != nil {
		return common.NewUserError("Could not confirm transaction", err)
	}
	if result.Err != nil {
		fmt.Println(cli.FormatError(result.Err.Error()))
		return common.NewUserError("Transaction failed", result.Err)
	}

	fmt.Println(cli.RenderReceipt(result.Record))
	fmt.Println(cli.FormatSuccess("Balance: " + cli.FormatMoney(l.Balance())))
	return nil
}
