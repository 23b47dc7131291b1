package cmd

import (
	"fmt"

	"inkwell-cli/api"
	"inkwell-cli/auth"
	"inkwell-cli/content"
	"inkwell-cli/guard"
	"inkwell-cli/shared"
	"inkwell-cli/term"
	"inkwell-cli/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [post-id]",
	Short: "Edit one of your posts",
	Args:  cobra.MaximumNArgs(1),
	Run:   editPost,
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().String("image", "", "Path to a replacement image")
}

func editPost(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)

	posts := content.NewPostCollection(api.Client)

	term.StartSpinner("")
	apiErr := posts.LoadAll()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	post := resolveOwnPost(posts, sess, args, "Which post do you want to edit?")

	title, err := term.GetUserStringInputWithDefault("Title:", post.Title)
	if err != nil {
		term.OutputErrorAndExit("Error prompting title: %v", err)
	}

	body, err := term.GetUserStringInputWithDefault("Content:", post.Content)
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}

	imagePath, _ := cmd.Flags().GetString("image")
	draft := types.PostDraft{Title: title, Content: body, ImagePath: imagePath}

	term.StartSpinner("🖊️  Saving...")
	_, apiErr = posts.Update(post.Id, draft)
	term.StopSpinner()

	if apiErr != nil {
		outputDraftError("Failed to save post", apiErr.Msg, draft)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post updated")
	term.PrintCmds("", "show", "dashboard")
}

// resolveOwnPost picks the target post: by id when given, otherwise an
// interactive select over the caller's own posts. Admins can target any
// post; the service enforces ownership either way and a 403 is surfaced
// inline.
func resolveOwnPost(posts *content.Collection[*shared.Post, types.PostDraft], sess auth.Session, args []string, selectMsg string) *shared.Post {
	items := posts.Items()

	if len(args) > 0 {
		for _, post := range items {
			if post.Id == args[0] {
				return post
			}
		}
		term.OutputErrorAndExit("Post not found: %s", args[0])
	}

	candidates := items
	if !sess.IsAdmin() {
		candidates, _ = content.Partition(items, sess.User)
	}

	if len(candidates) == 0 {
		fmt.Println("🤷‍♂️ You don't have any posts yet")
		term.PrintCmds("", "new")
		term.OutputErrorAndExit("nothing to select")
	}

	options := make([]string, len(candidates))
	byOption := map[string]*shared.Post{}
	for i, post := range candidates {
		option := fmt.Sprintf("%s (%s)", post.Title, post.Id)
		options[i] = option
		byOption[option] = post
	}

	selected, err := term.SelectFromList(selectMsg, options)
	if err != nil {
		term.OutputErrorAndExit("Error selecting post: %v", err)
	}

	return byOption[selected]
}
