package cmd

import (
	"inkwell-cli/auth"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Create a new Inkwell account",
	Args:  cobra.NoArgs,
	Run:   signUp,
}

func init() {
	RootCmd.AddCommand(signUpCmd)
}

func signUp(cmd *cobra.Command, args []string) {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Choose a password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	term.StartSpinner("🖊️  Creating account...")
	authed, apiErr := auth.Current.SignUp(username, email, password)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Sign up failed: %s", apiErr.Msg)
	}

	if !authed {
		// registration didn't return a token; route to sign-in
		color.New(color.Bold, term.ColorHiGreen).Println("✅ Account created")
		term.PrintCmds("", "sign-in")
		return
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed up and signed in as %s\n\n", username)
	term.PrintCmds("", "dashboard", "new")
}
