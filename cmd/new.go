package cmd

import (
	"os"

	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/guard"
	"inkwell-cli/term"
	"inkwell-cli/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Publish a new post",
	Args:  cobra.NoArgs,
	Run:   newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().String("title", "", "Post title")
	newCmd.Flags().String("content", "", "Post body")
	newCmd.Flags().String("image", "", "Path to an image to attach")
}

func newPost(cmd *cobra.Command, args []string) {
	mustAllow(guard.AuthenticatedAny)

	draft := draftFromFlags(cmd)

	if draft.Title == "" {
		title, err := term.GetRequiredUserStringInput("Title:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting title: %v", err)
		}
		draft.Title = title
	}

	if draft.Content == "" {
		body, err := term.GetRequiredUserStringInput("Content:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting content: %v", err)
		}
		draft.Content = body
	}

	posts := content.NewPostCollection(api.Client)

	term.StartSpinner("🖊️  Publishing...")
	_, apiErr := posts.Create(draft)
	term.StopSpinner()

	if apiErr != nil {
		outputDraftError("Failed to save post", apiErr.Msg, draft)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post published")
	term.PrintCmds("", "posts", "dashboard")
}

func draftFromFlags(cmd *cobra.Command) types.PostDraft {
	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("content")
	imagePath, _ := cmd.Flags().GetString("image")

	if imagePath != "" {
		if _, err := os.Stat(imagePath); err != nil {
			term.OutputErrorAndExit("Can't read image %s: %v", imagePath, err)
		}
	}

	return types.PostDraft{Title: title, Content: body, ImagePath: imagePath}
}

// outputDraftError surfaces a create/update failure inline and echoes the
// draft back so the user's input isn't lost with the process.
func outputDraftError(prefix, msg string, draft types.PostDraft) {
	term.OutputSimpleError("%s: %s", prefix, msg)

	color.New(color.Bold).Println("\nYour draft:")
	color.New(term.ColorHiCyan).Printf("  Title: %s\n", draft.Title)
	color.New(term.ColorHiCyan).Printf("  Content: %s\n", draft.Content)
	if draft.HasAttachment() {
		color.New(term.ColorHiCyan).Printf("  Image: %s\n", draft.ImagePath)
	}

	os.Exit(1)
}
