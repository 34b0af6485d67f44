package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so the boundary layer can translate it
// into a transport response. All kinds are recoverable by the caller.
type Kind int

const (
	// KindNotFound reports that a keyed entity is absent.
	KindNotFound Kind = iota + 1
	// KindConflict reports a uniqueness or membership violation.
	KindConflict
	// KindInvalidCredential reports a failed password verification.
	KindInvalidCredential
)

// Error is a typed, caller-recoverable service failure. Message is the
// client-facing reason; existing clients match on the exact text, so it must
// be surfaced verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func invalidCredential(message string) *Error {
	return &Error{Kind: KindInvalidCredential, Message: message}
}

// KindOf extracts the failure kind from err, or 0 when err is not a service
// error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool          { return KindOf(err) == KindConflict }
func IsInvalidCredential(err error) bool { return KindOf(err) == KindInvalidCredential }
