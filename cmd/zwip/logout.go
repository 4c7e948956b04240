package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and erase the wallet",
		Long: `Clear the user profile, balance and transaction history entirely.
This is an irreversible reset, not an archive.`,
		RunE: runLogout,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runLogout(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Print(cli.FormatPrompt("This erases your balance and history. Type 'logout' to confirm"))
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != "logout" {
			fmt.Println(cli.FormatWarning("Logout cancelled"))
			return nil
		}
	}

	l, closeStore, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := l.Logout(ctx); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess("Logged out. The wallet has been reset."))
	return nil
}
