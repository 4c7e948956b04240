package main

import (
	"github.com/Ambaicci/zwip/internal/config"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/cobra"
)

func topupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topup",
		Aliases: []string{"add"},
		Short:   "Add money to your balance",
		Long: `Add money through a funding method: card, bank transfer, mobile money,
crypto or a cash deposit. Fees and limits depend on the method.`,
		RunE: runTopup,
	}
}

func runTopup(cmd *cobra.Command, _ []string) error {
	flow := wizard.TopUpFlow(config.FundingMethods())
	return runFlow(cmd.Context(), flow, tui.Prefill{}, false)
}
