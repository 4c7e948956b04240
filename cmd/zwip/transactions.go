package main

import (
	"fmt"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/Ambaicci/zwip/internal/ledger"
	"github.com/Ambaicci/zwip/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"history", "tx"},
		Short:   "Browse your transaction history",
		Long: `List transactions with filtering and sorting.

Filter by type (sent, received, paid, withdrawal, added, refund), by time
window (today, week, month, year) and by free text over contact and note.
Sort by date, amount or name, ascending or descending.`,
		RunE: runTransactions,
	}

	cmd.Flags().String("type", "", "Filter by transaction type")
	cmd.Flags().String("window", "all", "Time window (all, today, week, month, year)")
	cmd.Flags().String("search", "", "Free-text search over contact and note")
	cmd.Flags().String("sort", "date", "Sort field (date, amount, name)")
	cmd.Flags().Bool("asc", false, "Sort ascending instead of descending")

	_ = viper.BindPFlag("transactions.type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("transactions.window", cmd.Flags().Lookup("window"))
	_ = viper.BindPFlag("transactions.search", cmd.Flags().Lookup("search"))
	_ = viper.BindPFlag("transactions.sort", cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("transactions.asc", cmd.Flags().Lookup("asc"))

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, closeStore, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	filter := ledger.Filter{
		Kind:   model.TxKind(viper.GetString("transactions.type")),
		Window: ledger.TimeWindow(viper.GetString("transactions.window")),
		Search: viper.GetString("transactions.search"),
	}
	sortBy := ledger.Sort{
		Field:     ledger.SortField(viper.GetString("transactions.sort")),
		Ascending: viper.GetBool("transactions.asc"),
	}

	txns := l.ListTransactions(filter, sortBy)
	summary := l.Summarize(filter)

	fmt.Println(cli.FormatTitle("Transactions"))
	fmt.Println(cli.RenderTransactionsTable(txns, summary))
	return nil
}
