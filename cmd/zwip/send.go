package main

import (
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send money to a contact or phone number",
		Long: `Send money person-to-person. Amounts up to $100 pay a flat $1.50 fee,
up to $1,000 pay 1.5%, and larger transfers pay 1.0%, with a $0.50 minimum.
Single transfers are capped at $5,000.`,
		RunE: runSend,
	}

	cmd.Flags().String("to", "", "Recipient phone number or contact name")
	cmd.Flags().String("amount", "", "Amount to send")
	cmd.Flags().String("note", "", "Optional note")
	cmd.Flags().BoolP("yes", "y", false, "Skip the interactive wizard and confirm immediately")

	_ = viper.BindPFlag("send.to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("send.amount", cmd.Flags().Lookup("amount"))
	_ = viper.BindPFlag("send.note", cmd.Flags().Lookup("note"))
	_ = viper.BindPFlag("send.yes", cmd.Flags().Lookup("yes"))

	return cmd
}

func runSend(cmd *cobra.Command, _ []string) error {
	prefill := tui.Prefill{
		Destination: viper.GetString("send.to"),
		Amount:      viper.GetString("send.amount"),
		Note:        viper.GetString("send.note"),
	}
	flow := wizard.SendFlow(model.DefaultContacts())
	return runFlow(cmd.Context(), flow, prefill, viper.GetBool("send.yes"))
}
