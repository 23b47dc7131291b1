package cmd

import (
	"fmt"

	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/guard"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin view of all posts",
	Args:  cobra.NoArgs,
	Run:   adminDashboard,
}

func init() {
	RootCmd.AddCommand(adminCmd)
}

func adminDashboard(cmd *cobra.Command, args []string) {
	mustAllow(guard.AuthenticatedAdmin)

	posts := content.NewPostCollection(api.Client)

	term.StartSpinner("")
	apiErr := posts.LoadAll()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputSimpleError("Error loading posts: %s", apiErr.Msg)
		fmt.Println("No posts to show.")
		return
	}

	items := posts.Items()

	color.New(color.Bold, term.ColorHiCyan).Printf("All Posts (%d)\n", len(items))
	if len(items) == 0 {
		fmt.Println("🤷‍♂️ No posts yet")
		return
	}

	renderPostTable(items)

	fmt.Println()
	// admins can edit or delete any post; the same commands apply
	term.PrintCmds("", "edit", "rm", "show")
}
