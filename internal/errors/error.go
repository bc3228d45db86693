package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryWidget  Category = "widget"
	CategorySurface Category = "surface"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// KitError is a structured error with a stable code, an optional hint and
// documentation.
type KitError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KitError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KitError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a KitError with the same code. This lets
// package-level sentinels built with New match fresh instances.
func (e *KitError) Is(target error) bool {
	t, ok := target.(*KitError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *KitError) WithSuggestion(s string) *KitError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *KitError) WithDetail(d string) *KitError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *KitError) Wrap(err error) *KitError {
	e.Wrapped = err
	return e
}

// New creates a KitError from a registered error code.
func New(code string) *KitError {
	template, ok := registry[code]
	if !ok {
		return &KitError{
			Code:    code,
			Message: "Unknown error",
		}
	}

	return &KitError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new KitError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *KitError {
	return &KitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a KitError.
func FromError(err error, code string) *KitError {
	if err == nil {
		return nil
	}
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first KitError in err's chain, or "".
func Code(err error) string {
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke.Code
	}
	return ""
}
