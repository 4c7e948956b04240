package main

import (
	"github.com/Ambaicci/zwip/internal/config"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/cobra"
)

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw cash at an agent",
		Long: `Get a withdrawal code to cash out at a nearby agent.
Withdrawals carry a flat $1.50 fee and a $10 minimum.`,
		RunE: runWithdraw,
	}
}

func runWithdraw(cmd *cobra.Command, _ []string) error {
	flow := wizard.WithdrawFlow(config.AgentMethod())
	return runFlow(cmd.Context(), flow, tui.Prefill{}, false)
}
