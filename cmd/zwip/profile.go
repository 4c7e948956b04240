package main

import (
	"fmt"

	"github.com/Ambaicci/zwip/internal/cli"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
		RunE:  runProfile,
	}

	cmd.Flags().String("name", "", "Update display name")
	cmd.Flags().String("email", "", "Update email address")
	cmd.Flags().String("phone", "", "Update phone number")

	return cmd
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	l, closeStore, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	user := l.User()
	if user == nil {
		return fmt.Errorf("no profile: wallet is logged out")
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")

	if name != "" || email != "" || phone != "" {
		updated := *user
		if name != "" {
			updated.Name = name
		}
		if email != "" {
			updated.Email = email
		}
		if phone != "" {
			updated.PhoneNumber = phone
		}
		if err := l.UpdateUser(ctx, updated); err != nil {
			return err
		}
		user = &updated
		fmt.Println(cli.FormatSuccess("Profile updated"))
	}

	content := fmt.Sprintf("%-8s %s\n%-8s %s\n%-8s %s",
		"Name:", user.Name,
		"Phone:", user.PhoneNumber,
		"Email:", user.Email)
	fmt.Println(cli.RenderBox("Profile", content))
	return nil
}
