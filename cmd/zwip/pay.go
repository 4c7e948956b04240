package main

import (
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a business",
		Long: `Pay a registered business by name or business code.
Business payments carry a 1.5% fee with a $0.50 minimum.`,
		RunE: runPay,
	}

	cmd.Flags().String("to", "", "Business name or code")
	cmd.Flags().String("amount", "", "Amount to pay")
	cmd.Flags().String("note", "", "Optional note")
	cmd.Flags().BoolP("yes", "y", false, "Skip the interactive wizard and confirm immediately")

	_ = viper.BindPFlag("pay.to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("pay.amount", cmd.Flags().Lookup("amount"))
	_ = viper.BindPFlag("pay.note", cmd.Flags().Lookup("note"))
	_ = viper.BindPFlag("pay.yes", cmd.Flags().Lookup("yes"))

	return cmd
}

func runPay(cmd *cobra.Command, _ []string) error {
	prefill := tui.Prefill{
		Destination: viper.GetString("pay.to"),
		Amount:      viper.GetString("pay.amount"),
		Note:        viper.GetString("pay.note"),
	}
	flow := wizard.PayFlow(model.DefaultBusinesses())
	return runFlow(cmd.Context(), flow, prefill, viper.GetBool("pay.yes"))
}
