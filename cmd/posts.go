package cmd

import (
	"fmt"
	"os"

	"inkwell-cli/api"
	"inkwell-cli/content"
	"inkwell-cli/format"
	"inkwell-cli/shared"
	"inkwell-cli/term"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ls"},
	Short:   "List published posts",
	Args:    cobra.NoArgs,
	Run:     listPosts,
}

func init() {
	RootCmd.AddCommand(postsCmd)
}

func listPosts(cmd *cobra.Command, args []string) {
	resolveSession()

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
	if len(items) == 0 {
		fmt.Println("🤷‍♂️ No posts yet")
		return
	}

	renderPostTable(items)
	term.PrintCmds("", "show", "browse")
}

func renderPostTable(posts []*shared.Post) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Id", "Title", "Author", "Published"})
	table.SetAutoWrapText(false)

	for _, post := range posts {
		table.Append([]string{
			post.Id,
			post.Title,
			post.DisplayAuthor(),
			format.Time(post.CreatedAt),
		})
	}

	table.Render()
}
