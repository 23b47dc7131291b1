package cmd

import (
	"inkwell-cli/api"
	"inkwell-cli/auth"
	"inkwell-cli/term"
	"inkwell-cli/ui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the feed interactively",
	Args:  cobra.NoArgs,
	Run:   browse,
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

func browse(cmd *cobra.Command, args []string) {
	if err := ui.RunBrowse(auth.Current, api.Client); err != nil {
		term.OutputErrorAndExit("Error running browse UI: %v", err)
	}
}
