package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every failure a request can produce carries exactly one of
// these, and the HTTP layer maps the kind to a status code.
const (
	KindBadRequest        = "bad_request"
	KindInvalidFileType   = "invalid_file_type"
	KindNotFound          = "not_found"
	KindExtractionFailure = "extraction_failure"
	KindGatewayFailure    = "gateway_failure"
)

// Error is a request-scoped error with a machine-readable kind.
type Error struct {
	Kind string
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// Errorf builds an Error of the given kind. The format and args follow
// fmt.Errorf semantics, including %w wrapping.
func Errorf(kind string, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: fmt.Errorf(format, args...)}
}

// ErrorKind returns the kind of err, or the empty string if err carries none.
func ErrorKind(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HTTPStatus maps an error to the response status for its kind. Errors
// without a kind are treated as internal failures.
func HTTPStatus(err error) int {
	switch ErrorKind(err) {
	case KindBadRequest, KindInvalidFileType:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
