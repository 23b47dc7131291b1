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

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Your posts vs. everyone else's",
	Args:  cobra.NoArgs,
	Run:   dashboard,
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

func dashboard(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)

	posts := content.NewPostCollection(api.Client)

	term.StartSpinner("")
	apiErr := posts.LoadAll()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputSimpleError("Error loading posts: %s", apiErr.Msg)
		fmt.Println("No posts to show.")
		return
	}

	mine, others := content.Partition(posts.Items(), sess.User)

	color.New(color.Bold, term.ColorHiCyan).Printf("My Posts (%d)\n", len(mine))
	if len(mine) == 0 {
		fmt.Println("You haven't created any posts yet. Create your first post!")
		term.PrintCmds("", "new")
	} else {
		renderPostTable(mine)
	}

	fmt.Println()

	color.New(color.Bold, term.ColorHiCyan).Printf("All Posts (%d)\n", len(others))
	if len(others) == 0 {
		fmt.Println("No posts from other users yet.")
	} else {
		renderPostTable(others)
	}

	fmt.Println()
	term.PrintCmds("", "new", "edit", "rm", "show")
}
