package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"inkwell-cli/shared"
)

var onUnauthorized func()

// SetOnUnauthorizedFn injects what happens when the service rejects the
// token (401). Wired in main to drop the session; kept as an injection to
// avoid an api → auth → api cycle in tests.
func SetOnUnauthorizedFn(fn func()) {
	onUnauthorized = fn
}

// HandleApiError converts a non-2xx response into a typed ApiError. The
// service reports failures as {"message": "..."}; the message is surfaced
// verbatim when present, with a generic fallback otherwise. A 401 also fires
// the on-unauthorized hook so the session store can invalidate itself.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	apiErr := &shared.ApiError{
		Status: r.StatusCode,
		Msg:    errorMessage(r, errBody),
	}

	switch {
	case r.StatusCode == http.StatusUnauthorized:
		apiErr.Type = shared.ApiErrorTypeInvalidToken
		if onUnauthorized != nil {
			onUnauthorized()
		}
	case r.StatusCode == http.StatusForbidden:
		apiErr.Type = shared.ApiErrorTypeForbidden
	case r.StatusCode == http.StatusNotFound:
		apiErr.Type = shared.ApiErrorTypeNotFound
	default:
		apiErr.Type = shared.ApiErrorTypeOther
	}

	return apiErr
}

func errorMessage(r *http.Response, errBody []byte) string {
	fallback := fmt.Sprintf("request failed with status %d", r.StatusCode)

	if len(errBody) == 0 {
		return fallback
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Message string `json:"message"`
			Msg     string `json:"msg"`
		}
		if err := json.Unmarshal(errBody, &body); err != nil {
			log.Printf("error unmarshalling error response: %v\n", err)
			return fallback
		}
		if body.Message != "" {
			return body.Message
		}
		if body.Msg != "" {
			return body.Msg
		}
		return fallback
	}

	if msg := strings.TrimSpace(string(errBody)); msg != "" {
		return msg
	}

	return fallback
}

func networkErr(err error) *shared.ApiError {
	return &shared.ApiError{
		Type: shared.ApiErrorTypeNetworkUnreachable,
		Msg:  fmt.Sprintf("error sending request: %v", err),
	}
}

func decodeErr(err error) *shared.ApiError {
	return &shared.ApiError{
		Type: shared.ApiErrorTypeOther,
		Msg:  fmt.Sprintf("error decoding response: %v", err),
	}
}
