package term

import (
	"fmt"

	"github.com/fatih/color"
)

var CmdDesc = map[string]string{
	"sign-in":      "sign in to your account",
	"sign-up":      "create a new account",
	"sign-out":     "sign out and clear the stored token",
	"whoami":       "show the signed-in identity",
	"posts":        "list published posts",
	"show":         "read a post and its comments",
	"new":          "publish a new post",
	"edit":         "edit one of your posts",
	"rm":           "delete one of your posts",
	"comment":      "comment on a post",
	"comment-rm":   "delete a comment",
	"comment-edit": "edit one of your comments",
	"dashboard":    "your posts vs. everyone else's",
	"admin":        "admin view of all posts",
	"browse":       "interactive feed",
}

// PrintCmds suggests follow-up commands after an action.
func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		desc, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		styled := color.New(color.Bold, ColorHiCyan).Sprintf(" inkwell %s ", cmd)
		fmt.Printf("%s👉 %s → %s\n", prefix, styled, desc)
	}
	fmt.Println()
}
