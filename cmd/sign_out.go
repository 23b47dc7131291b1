package cmd

import (
	"fmt"

	"inkwell-cli/auth"
	"inkwell-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and clear the stored token",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	if err := auth.Current.SignOut(); err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}

	fmt.Println("👋 Signed out")
}
