package main

import (
	"fmt"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show your balance",
		RunE:  runBalance,
	}

	cmd.Flags().Bool("show", false, "Unhide the balance from now on")
	cmd.Flags().Bool("hide", false, "Hide the balance from now on")
	cmd.Flags().Bool("toggle", false, "Flip the current visibility")

	return cmd
}

func runBalance(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, closeStore, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	show, _ := cmd.Flags().GetBool("show")
	hide, _ := cmd.Flags().GetBool("hide")
	toggle, _ := cmd.Flags().GetBool("toggle")
	if (show && hide) || (toggle && (show || hide)) {
		return fmt.Errorf("--show, --hide and --toggle are mutually exclusive")
	}
	if toggle {
		show = !l.BalanceVisible()
	}
	if show || hide || toggle {
		if err := l.SetBalanceVisible(ctx, show); err != nil {
			return err
		}
	}

	fmt.Println(cli.FormatTitle("Balance"))
	fmt.Println(cli.FormatBalance(l.Balance(), l.BalanceVisible()))
	if !l.BalanceVisible() {
		fmt.Println(cli.SubtleStyle.Render("Run 'zwip balance --show' to reveal."))
	}
	return nil
}
