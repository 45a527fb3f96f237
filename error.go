package newsclip

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EURLACCESS      = "url_access"
	ENOTFOUND       = "not_found"
	ETIMEOUT        = "timeout"
	EUNSUPPORTED    = "unsupported_source"
	EEXTRACTION     = "extraction"
	ENETWORK        = "network"
	ENOTIMPLEMENTED = "not_implemented"
	EINVALID        = "invalid"
	EINTERNAL       = "internal"
)

// Error represents an application-specific error.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the failure.
	Message string

	// Domains lists the supported domains. Only set for EUNSUPPORTED.
	Domains []string

	// URL is the address the failure refers to. Set for EURLACCESS.
	URL string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("newsclip error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("newsclip error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with the given code and message that wraps err.
func WrapError(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// ErrorDomains returns the supported domains carried by an EUNSUPPORTED error.
func ErrorDomains(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Domains
	}
	return nil
}

// ErrorURL returns the URL carried by an application error, if any.
func ErrorURL(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.URL
	}
	return ""
}
