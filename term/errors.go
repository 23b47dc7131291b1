package term

import (
	"fmt"
	"os"

	"inkwell-cli/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// HandleApiError renders a remote failure at the edge of a command. An
// invalid token means the session was already dropped by the api hook, so the
// user just needs to sign in again; everything else is an inline message.
func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	if apiErr.Type == shared.ApiErrorTypeInvalidToken {
		OutputSimpleError("Your session has expired or was revoked.")
		PrintCmds("", "sign-in")
		os.Exit(1)
	}

	if apiErr.Type == shared.ApiErrorTypeForbidden {
		OutputErrorAndExit("Not allowed: %s", apiErr.Msg)
	}

	OutputErrorAndExit(apiErr.Msg)
}
