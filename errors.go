package camelot

import (
	"errors"
	"fmt"
)

// Error codes for machine-readable error classification.
const (
	EINVALID      = "invalid"       // malformed input (e.g. page range spec)
	EUNSUPPORTED  = "unsupported"   // source format not supported
	EEXTRACTION   = "extraction"    // a page could not be read or copied
	ENOTDECRYPTED = "not_decrypted" // supplied credential did not unlock the document
	ENOTFOUND     = "not_found"     // resource does not exist
	EINTERNAL     = "internal"      // unexpected internal error
)

// Error represents an application-specific error. Errors can be unwrapped
// by calling errors.Unwrap.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("camelot error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
