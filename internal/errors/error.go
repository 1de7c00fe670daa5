package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryGeneration    Category = "generation"
	CategoryHydration     Category = "hydration"
	CategoryAccessibility Category = "accessibility"
	CategoryConfig        Category = "config"
	CategoryCLI           Category = "cli"
)

// AriaError is a structured error with a code, explanation and suggestion.
type AriaError struct {
	// Code is a unique error identifier (e.g., "E010").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// File is the input the error was found in, if any.
	File string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AriaError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AriaError) Unwrap() error {
	return e.Wrapped
}

// WithFile records the input the error was found in.
func (e *AriaError) WithFile(file string) *AriaError {
	e.File = file
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AriaError) WithSuggestion(s string) *AriaError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *AriaError) WithDetail(d string) *AriaError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *AriaError) Wrap(err error) *AriaError {
	e.Wrapped = err
	return e
}

// New creates an AriaError from a registered error code.
func New(code string) *AriaError {
	template, ok := registry[code]
	if !ok {
		return &AriaError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AriaError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new AriaError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AriaError {
	return &AriaError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AriaError. An AriaError anywhere in
// the chain is returned unchanged.
func FromError(err error, code string) *AriaError {
	if err == nil {
		return nil
	}
	var ae *AriaError
	if stderrors.As(err, &ae) {
		return ae
	}
	return New(code).WithDetail(err.Error()).Wrap(err)
}
