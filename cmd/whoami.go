package cmd

import (
	"os"

	"inkwell-cli/guard"
	"inkwell-cli/term"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Username", "Email", "Role"})
	table.Append([]string{sess.User.Username, sess.User.Email, string(sess.User.Role)})
	table.Render()

	if sess.IsAdmin() {
		term.PrintCmds("", "admin")
	}
}
