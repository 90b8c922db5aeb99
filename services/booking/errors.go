package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the booking engine.
const (
	CodeInvalidInput = "invalidInput"
	CodeNotFound     = "notFound"
	CodeConflict     = "conflict"
	CodeForbidden    = "forbidden"
	CodeInternal     = "internal"
)

// EngineError carries a machine-readable code alongside the message so
// the HTTP layer can pick a status without string matching.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInput(msg string) error {
	return &EngineError{Code: CodeInvalidInput, Message: msg}
}

func NewNotFound(msg string) error {
	return &EngineError{Code: CodeNotFound, Message: msg}
}

func NewConflict(msg string) error {
	return &EngineError{Code: CodeConflict, Message: msg}
}

func NewForbidden(msg string) error {
	return &EngineError{Code: CodeForbidden, Message: msg}
}

func NewInternal(msg string) error {
	return &EngineError{Code: CodeInternal, Message: msg}
}

// CodeOf extracts the engine error code, defaulting to internal.
func CodeOf(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable part of an engine error.
func MessageOf(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Message
	}
	return err.Error()
}
