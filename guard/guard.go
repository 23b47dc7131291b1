// Package guard maps the current session and a view's required capability to
// a routing decision. It's a pure function of its inputs; views re-evaluate
// it on every session transition they observe.
package guard

import (
	"inkwell-cli/auth"
)

type Capability int

const (
	Public Capability = iota
	AuthenticatedAny
	AuthenticatedAdmin
)

type Outcome int

const (
	Allow Outcome = iota
	// session restoration is still in flight; render a loading state, don't
	// redirect yet
	Pending
	Redirect
)

const (
	LoginPath         = "/login"
	UserDashboardPath = "/user-dashboard"
)

type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

var (
	allow   = Decision{Outcome: Allow}
	pending = Decision{Outcome: Pending}
)

func redirect(path string) Decision {
	return Decision{Outcome: Redirect, RedirectTo: path}
}

// Decide evaluates the rules in order: in-flight restoration always wins,
// public views always render, and admin views bounce authenticated non-admins
// to their own dashboard rather than to sign-in.
func Decide(sess auth.Session, capability Capability) Decision {
	if sess.Status == auth.StatusAuthenticating {
		return pending
	}

	switch capability {
	case Public:
		return allow

	case AuthenticatedAny:
		if sess.Authenticated() {
			return allow
		}
		return redirect(LoginPath)

	case AuthenticatedAdmin:
		if sess.IsAdmin() {
			return allow
		}
		if sess.Authenticated() {
			return redirect(UserDashboardPath)
		}
		return redirect(LoginPath)
	}

	return redirect(LoginPath)
}
