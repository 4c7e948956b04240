package main

import (
	"fmt"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/Ambaicci/zwip/internal/tui"
	"github.com/Ambaicci/zwip/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func requestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request money from a contact",
		Long: `Request money from a contact. Prints a shareable payment-request
payload (the content of the QR code the mobile app would display), then
credits your balance when the simulated acceptance settles.`,
		RunE: runRequest,
	}

	cmd.Flags().String("from", "", "Who to request from")
	cmd.Flags().String("amount", "", "Amount to request")
	cmd.Flags().String("note", "", "Optional note")
	cmd.Flags().Bool("qr-only", false, "Print the payment request payload and exit without crediting")

	_ = viper.BindPFlag("request.from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("request.amount", cmd.Flags().Lookup("amount"))
	_ = viper.BindPFlag("request.note", cmd.Flags().Lookup("note"))
	_ = viper.BindPFlag("request.qr_only", cmd.Flags().Lookup("qr-only"))

	return cmd
}

func runRequest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	from := viper.GetString("request.from")
	rawAmount := viper.GetString("request.amount")
	note := viper.GetString("request.note")

	if viper.GetBool("request.qr_only") {
		if from == "" || rawAmount == "" {
			return fmt.Errorf("--qr-only requires --from and --amount")
		}

		amount, err := model.ParseMoney(rawAmount)
		if err != nil {
			return err
		}

		l, closeStore, err := openLedger(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		owner := "you"
		if u := l.User(); u != nil {
			owner = u.Name
		}
		payload, err := model.NewPaymentRequest(amount, owner, from, note).Encode()
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderBox(cli.QRIcon+" Payment Request", payload))
		fmt.Println(cli.SubtleStyle.Render("Share this payload; any Zwip app can scan it."))
		return nil
	}

	prefill := tui.Prefill{Destination: from, Amount: rawAmount, Note: note}
	flow := wizard.RequestFlow(model.DefaultContacts())
	return runFlow(ctx, flow, prefill, false)
}
