package cmd

import (
	"strings"

	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/guard"
	"inkwell-cli/shared"
	"inkwell-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment [post-id] [body]",
	Short: "Comment on a post",
	Args:  cobra.RangeArgs(1, 2),
	Run:   addComment,
}

var commentRmCmd = &cobra.Command{
	Use:   "comment-rm [post-id] [comment-id]",
	Short: "Delete a comment (yours, or any if you're an admin)",
	Args:  cobra.ExactArgs(2),
	Run:   rmComment,
}

var commentEditCmd = &cobra.Command{
	Use:   "comment-edit [post-id] [comment-id] [body]",
	Short: "Edit one of your comments",
	Args:  cobra.RangeArgs(2, 3),
	Run:   editComment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
	RootCmd.AddCommand(commentRmCmd)
	RootCmd.AddCommand(commentEditCmd)
}

func addComment(cmd *cobra.Command, args []string) {
	mustAllow(guard.AuthenticatedAny)

	body := ""
	if len(args) > 1 {
		body = args[1]
	} else {
		var err error
		body, err = term.GetUserStringInput("Write a comment:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	thread := content.NewCommentThread(api.Client, args[0])

	term.StartSpinner("")
	comment, apiErr := thread.Add(body)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputErrorAndExit(apiErr.Msg)
		}
		term.HandleApiError(apiErr)
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("💬 Comment added (%s)\n", comment.Id)
}

func rmComment(cmd *cobra.Command, args []string) {
	sess := mustAllow(guard.AuthenticatedAny)
	postId, commentId := args[0], args[1]

	thread := content.NewCommentThread(api.Client, postId)

	term.StartSpinner("")
	apiErr := thread.Load()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	comment := findComment(thread, commentId)

	// same gate as the delete control in the thread view: author or admin
	if !content.CanDelete(sess.User, comment) {
		term.OutputErrorAndExit("Only the comment's author or an admin can delete it")
	}

	term.StartSpinner("")
	apiErr = thread.Delete(commentId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("🗑  Comment deleted")
}

func editComment(cmd *cobra.Command, args []string) {
	mustAllow(guard.AuthenticatedAny)
	postId, commentId := args[0], args[1]

	thread := content.NewCommentThread(api.Client, postId)

	term.StartSpinner("")
	apiErr := thread.Load()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	comment := findComment(thread, commentId)

	body := ""
	if len(args) > 2 {
		body = args[2]
	} else {
		var err error
		body, err = term.GetUserStringInputWithDefault("Comment:", comment.Content)
		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	if strings.TrimSpace(body) == comment.Content {
		return
	}

	term.StartSpinner("")
	_, apiErr = thread.Edit(commentId, body)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputErrorAndExit(apiErr.Msg)
		}
		term.HandleApiError(apiErr)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Comment updated")
}

func findComment(thread *content.CommentThread, commentId string) *shared.Comment {
	for _, comment := range thread.Comments() {
		if comment.Id == commentId {
			return comment
		}
	}

	term.OutputErrorAndExit("Comment not found: %s", commentId)
	return nil
}
