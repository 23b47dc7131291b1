package cmd

import (
	"fmt"

	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/format"
	"inkwell-cli/guard"
	"inkwell-cli/shared"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Read a post and its comments",
	Args:  cobra.ExactArgs(1),
	Run:   showPost,
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("open-image", false, "Open the post's image in your browser")
}

func showPost(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)
	postId := args[0]

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	if apiErr != nil {
		term.StopSpinner()
		if apiErr.Type == shared.ApiErrorTypeNotFound {
			term.OutputErrorAndExit("Post not found")
		}
		term.HandleApiError(apiErr)
	}

	thread := content.NewCommentThread(api.Client, postId)
	commentsErr := thread.Load()
	term.StopSpinner()

	color.New(color.Bold, term.ColorHiCyan).Println(post.Title)
	fmt.Printf("By %s · %s\n\n", post.DisplayAuthor(), format.Time(post.CreatedAt))

	md, err := term.GetMarkdown(post.Content)
	if err != nil {
		// fall back to plain rendering rather than losing the post
		md = term.GetPlain(post.Content)
	}
	fmt.Println(md)

	if post.Image != "" {
		openImage, _ := cmd.Flags().GetBool("open-image")
		imageUrl := api.ImageURL(post.Image)

		if openImage {
			if err := browser.OpenURL(imageUrl); err != nil {
				term.OutputSimpleError("Error opening image: %v", err)
			}
		} else {
			fmt.Printf("🖼  %s\n\n", imageUrl)
		}
	}

	if commentsErr != nil {
		term.OutputSimpleError("Error loading comments: %s", commentsErr.Msg)
		return
	}

	renderComments(thread.Comments(), sess.User)
}

func renderComments(comments []*shared.Comment, user *shared.User) {
	color.New(color.Bold).Printf("💬 Comments (%d)\n\n", len(comments))

	if len(comments) == 0 {
		fmt.Println("No comments yet. Be the first to comment!")
		term.PrintCmds("", "comment")
		return
	}

	for _, comment := range comments {
		header := fmt.Sprintf("%s · %s", comment.DisplayAuthor(), format.Time(comment.CreatedAt))
		if content.CanDelete(user, comment) {
			header += color.New(term.ColorHiYellow).Sprintf("  [deletable: %s]", comment.Id)
		}
		fmt.Println(header)
		fmt.Println(term.GetPlain(comment.Content))
		fmt.Println()
	}

	term.PrintCmds("", "comment", "comment-rm")
}
