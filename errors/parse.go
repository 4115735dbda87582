// Package errors defines the typed errors returned by xml2json conversions.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a conversion failure.
type ErrorCode string

const (
	// ErrTagNoName indicates a tag whose interior is blank, so it has no name.
	ErrTagNoName ErrorCode = "xml2json-tag-no-name"
	// ErrDepthLimit indicates element nesting deeper than the configured limit.
	ErrDepthLimit ErrorCode = "xml2json-depth-limit"
	// ErrInvalidUTF8 indicates document bytes that are not valid UTF-8.
	ErrInvalidUTF8 ErrorCode = "xml2json-invalid-utf8"
	// ErrNilReader indicates a nil reader was passed to a conversion helper.
	ErrNilReader ErrorCode = "xml2json-nil-reader"
	// ErrInputTooLarge indicates a document larger than the configured limit.
	ErrInputTooLarge ErrorCode = "xml2json-input-too-large"
	// ErrRead indicates the document could not be read.
	ErrRead ErrorCode = "xml2json-read"
)

// ParseError reports a document that could not be converted.
// Offset is a byte offset into the document after declaration and comment
// removal, or -1 when no position applies.
type ParseError struct {
	Err     error
	Code    string
	Message string
	Tag     string
	Offset  int
}

// Error formats the error with its code and location context.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Tag != "" {
		b.WriteString(fmt.Sprintf(" in tag %q", e.Tag))
	}
	if e.Offset >= 0 {
		b.WriteString(fmt.Sprintf(" at offset %d", e.Offset))
	}
	if e.Err != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a *ParseError with the same code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// NewParseError builds a ParseError with a code, message, and offset.
func NewParseError(code ErrorCode, msg string, offset int) *ParseError {
	return &ParseError{Code: string(code), Message: msg, Offset: offset}
}

// NewParseErrorf formats a message and builds a ParseError.
func NewParseErrorf(code ErrorCode, offset int, format string, args ...any) *ParseError {
	return NewParseError(code, fmt.Sprintf(format, args...), offset)
}

// Wrap builds a ParseError that carries err as its cause.
func Wrap(code ErrorCode, err error, msg string) *ParseError {
	return &ParseError{Code: string(code), Message: msg, Offset: -1, Err: err}
}

// AsParseError extracts a ParseError from err.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// HasCode reports whether err is a ParseError with the given code.
func HasCode(err error, code ErrorCode) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Code == string(code)
}
