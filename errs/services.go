package errs

import (
	"errors"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// ErrNotifierFailed covers every outbound notification failure surfaced to
// HTTP callers; the visitor cannot act on anything more specific.
var ErrNotifierFailed = errors.New("notification delivery failed")

func NewNotifierError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrNotifierFailed,
		Details:    "Failed to forward notification",
		Cause:      cause,
	}
}

func IsNotifierError(err error) bool {
	return errors.Is(err, ErrNotifierFailed)
}
