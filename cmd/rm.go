package cmd

import (
	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/guard"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [post-id]",
	Short: "Delete one of your posts",
	Args:  cobra.MaximumNArgs(1),
	Run:   rmPost,
}

func init() {
	RootCmd.AddCommand(rmCmd)
}

func rmPost(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)

	posts := content.NewPostCollection(api.Client)

	term.StartSpinner("")
	apiErr := posts.LoadAll()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	post := resolveOwnPost(posts, sess, args, "Which post do you want to delete?")

	confirmed, err := term.ConfirmYesNo("Delete %q?", post.Title)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		return
	}

	term.StartSpinner("")
	apiErr = posts.Delete(post.Id)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("🗑  Post deleted")
}
