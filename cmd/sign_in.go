package cmd

import (
	"inkwell-cli/auth"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to your Inkwell account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)

	signInCmd.Flags().String("email", "", "Account email")
}

func signIn(cmd *cobra.Command, args []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		term.OutputErrorAndExit("Error getting email: %v", err)
	}

	if email == "" {
		email, err = term.GetRequiredUserStringInput("Your email:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting email: %v", err)
		}
	}

	password, err := term.GetUserPasswordInput("Your password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	term.StartSpinner("🔐 Signing in...")
	apiErr := auth.Current.SignIn(email, password)
	term.StopSpinner()

	if apiErr != nil {
		// session stays in auth_failed and is usable for another attempt
		term.OutputErrorAndExit("Sign in failed: %s", apiErr.Msg)
	}

	sess := auth.Current.Session()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed in as %s\n\n", sess.User.Username)

	if sess.IsAdmin() {
		term.PrintCmds("", "admin", "dashboard")
	} else {
		term.PrintCmds("", "dashboard", "browse")
	}
}
