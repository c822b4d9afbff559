package api

import (
	"encoding/json"
	"fmt"
)

// Reserved client-side error codes. Positive codes are either HTTP status
// codes (transport failures) or business codes from the envelope.
const (
	// CodeTimeout marks a request aborted by the client-side timeout.
	CodeTimeout = -1
	// CodeNetwork marks DNS, connection, decode and other failures that
	// never produced a usable response.
	CodeNetwork = -2
)

// Error is the single error shape every failure funnels through, whether
// it originated at the transport, the HTTP layer, or the business envelope.
// Callers branch on Code; there is no error hierarchy. An Error is built
// once where the failure is detected and never mutated afterwards.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error [%d]: %s", e.Code, e.Message)
}

// NewError creates an Error without an attached payload.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsTimeout reports whether the error is the client-side timeout.
func (e *Error) IsTimeout() bool {
	return e.Code == CodeTimeout
}

// IsUnauthorized reports whether the error is an HTTP 401, i.e. the
// session has been invalidated.
func (e *Error) IsUnauthorized() bool {
	return e.Code == 401
}
