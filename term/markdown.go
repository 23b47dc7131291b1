package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// GetMarkdown renders a post body for the terminal, themed to the detected
// background.
func GetMarkdown(input string) (string, error) {
	width := getTerminalWidth()

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width, 80)),
		glamour.WithPreservedNewLines(),
	)

	out, err := r.Render(input)
	if err != nil {
		return "", err
	}

	return out, nil
}

// GetPlain wraps and dims plain text (comment bodies, snippets).
func GetPlain(input string) string {
	width := getTerminalWidth()

	s := wordwrap.String(input, min(width-2, 80))

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	s = strings.Join(lines, "\n")

	c := "234"
	if termenv.HasDarkBackground() {
		c = "251"
	}

	return termenv.String(s).Foreground(termenv.ANSI256.Color(c)).String()
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
