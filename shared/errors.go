package shared

type ApiErrorType string

const (
	// no response from the service at all
	ApiErrorTypeNetworkUnreachable ApiErrorType = "network_unreachable"

	// 401-class: the token is missing, expired or revoked; callers drop the
	// session and route to sign-in
	ApiErrorTypeInvalidToken ApiErrorType = "invalid_token"

	// 403-class: authenticated but not the owner (and not an admin); surfaced
	// inline, session untouched
	ApiErrorTypeForbidden ApiErrorType = "forbidden"

	ApiErrorTypeNotFound ApiErrorType = "not_found"

	// client-side precondition failed before any request was sent
	ApiErrorTypeValidation ApiErrorType = "validation_failed"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}
