// Package apperr defines the user-facing error conditions raised while parsing
// and executing commands. Every condition is recoverable: the session reports
// it and keeps accepting commands.
package apperr

import "errors"

// Category separates bad input from valid input that conflicts with current state.
type Category int

const (
	// Format covers missing tokens and malformed values. These carry usage text.
	Format Category = iota
	// State covers well-formed input the current data cannot satisfy.
	State
)

func (c Category) String() string {
	switch c {
	case Format:
		return "Format Error"
	case State:
		return "State Error"
	default:
		return "Error"
	}
}

// Error is a reportable condition with a stable code.
type Error struct {
	Category Category
	Code     string
	Message  string
	Usage    string
	Err      error
}

func (e *Error) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on code so sentinels built with Sentinel work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// NewFormat returns a Format error.
func NewFormat(code, message, usage string) *Error {
	return &Error{Category: Format, Code: code, Message: message, Usage: usage}
}

// NewState returns a State error.
func NewState(code, message string) *Error {
	return &Error{Category: State, Code: code, Message: message}
}

// Sentinel returns a comparison target for errors.Is.
func Sentinel(code string) error {
	return &Error{Code: code}
}

// WithUsage re-wraps a value error as a Format error carrying the command usage.
// Errors that are not *Error are wrapped under CodeInvalidFormat.
func WithUsage(err error, usage string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Category: Format, Code: e.Code, Message: e.Message, Usage: usage, Err: err}
	}
	return &Error{Category: Format, Code: CodeInvalidFormat, Message: err.Error(), Usage: usage, Err: err}
}

// CategoryOf reports the category of err, ok is false when err is not an *Error.
func CategoryOf(err error) (Category, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Category, true
}

func IsFormat(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == Format
}

func IsState(err error) bool {
	c, ok := CategoryOf(err)
	return ok && c == State
}

// CodeOf returns the code of err, or CodeInternal when err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
