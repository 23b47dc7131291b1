package guard

import (
	"testing"

	"inkwell-cli/auth"
	"inkwell-cli/shared"

	"github.com/stretchr/testify/assert"
)

func anonymous() auth.Session {
	return auth.Session{Status: auth.StatusUnauthenticated}
}

func authenticating() auth.Session {
	return auth.Session{Status: auth.StatusAuthenticating, Token: "t"}
}

func signedIn(role shared.UserRole) auth.Session {
	return auth.Session{
		Status: auth.StatusAuthenticated,
		Token:  "t",
		User:   &shared.User{Id: "u1", Username: "ann", Role: role},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		sess       auth.Session
		capability Capability
		want       Decision
	}{
		{"pending wins over public", authenticating(), Public, Decision{Outcome: Pending}},
		{"pending wins over admin", authenticating(), AuthenticatedAdmin, Decision{Outcome: Pending}},

		{"public always renders", anonymous(), Public, Decision{Outcome: Allow}},
		{"public renders for users", signedIn(shared.RoleUser), Public, Decision{Outcome: Allow}},

		{"gated view redirects anonymous to login", anonymous(), AuthenticatedAny, Decision{Outcome: Redirect, RedirectTo: LoginPath}},
		{"gated view redirects after failed auth", auth.Session{Status: auth.StatusAuthFailed}, AuthenticatedAny, Decision{Outcome: Redirect, RedirectTo: LoginPath}},
		{"gated view renders for users", signedIn(shared.RoleUser), AuthenticatedAny, Decision{Outcome: Allow}},
		{"gated view renders for admins", signedIn(shared.RoleAdmin), AuthenticatedAny, Decision{Outcome: Allow}},

		{"admin view redirects anonymous to login", anonymous(), AuthenticatedAdmin, Decision{Outcome: Redirect, RedirectTo: LoginPath}},
		{"admin view bounces users to their dashboard", signedIn(shared.RoleUser), AuthenticatedAdmin, Decision{Outcome: Redirect, RedirectTo: UserDashboardPath}},
		{"admin view renders for admins", signedIn(shared.RoleAdmin), AuthenticatedAdmin, Decision{Outcome: Allow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.sess, tt.capability))
		})
	}
}
