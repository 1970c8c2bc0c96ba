package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnauthorized is returned after a 401. By the time the caller sees
// it the persisted credentials are already cleared and the unauthorized
// hook has fired.
var ErrUnauthorized = errors.New("session expired, please sign in again")

// TransportError wraps a failure where no response arrived at all.
type TransportError struct{ Err error }

func (e *TransportError) Error() string {
	return "no server response, please check your connection"
}

func (e *TransportError) Unwrap() error { return e.Err }

// Error is an application-level failure: success:false on HTTP 200, or
// a non-2xx response carrying a message. Field-level details are kept
// when the backend sends them so the UI can surface something better
// than "request failed".
type Error struct {
	Status        int
	Message       string
	FieldErrors   map[string]string
	MissingFields []string
}

func (e *Error) Error() string {
	if len(e.FieldErrors) > 0 {
		parts := make([]string, 0, len(e.FieldErrors))
		for field, msg := range e.FieldErrors {
			parts = append(parts, field+": "+msg)
		}
		sort.Strings(parts)
		return "validation failed: " + strings.Join(parts, "; ")
	}
	if len(e.MissingFields) > 0 {
		return "missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// UserMessage maps any error from this package to the text a page
// should show. Nothing here is fatal; callers surface the text and
// return to their previous state.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	if errors.Is(err, ErrUnauthorized) {
		return ErrUnauthorized.Error()
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return err.Error()
}
