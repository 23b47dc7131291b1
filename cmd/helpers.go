package cmd

import (
	"os"

	"inkwell-cli/auth"
	"inkwell-cli/guard"
	"inkwell-cli/term"
)

// resolveSession restores any persisted session before a command runs. The
// identity comes from /auth/me every time; only the token survives restarts.
func resolveSession() auth.Session {
	sess := auth.Current.Session()
	if sess.Status == auth.StatusUnauthenticated {
		term.StartSpinner("")
		auth.Current.Restore()
		term.StopSpinner()
	}
	return auth.Current.Session()
}

// mustAllow gates a command on the route guard, waiting out an in-flight
// restoration and translating redirects into sign-in/dashboard hints.
func mustAllow(capability guard.Capability) auth.Session {
	sess := resolveSession()

	for {
		decision := guard.Decide(sess, capability)

		switch decision.Outcome {
		case guard.Allow:
			return sess

		case guard.Pending:
			ch, cancel := auth.Current.Subscribe()
			for next := range ch {
				if next.Status != auth.StatusAuthenticating {
					sess = next
					break
				}
			}
			cancel()

		case guard.Redirect:
			redirectAndExit(decision.RedirectTo)
		}
	}
}

func redirectAndExit(path string) {
	switch path {
	case guard.UserDashboardPath:
		term.OutputSimpleError("That view is for admins.")
		term.PrintCmds("", "dashboard")
	default:
		term.OutputSimpleError("You need to sign in first.")
		term.PrintCmds("", "sign-in", "sign-up")
	}
	os.Exit(1)
}
