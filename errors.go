package edi

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEDI is matched by every error caused by field data rather than by a
// declaration. Use errors.Is(err, ErrEDI) to catch data errors broadly.
var ErrEDI = errors.New("edi: invalid field data")

// ErrRequired is wrapped by the EDIError returned when a required field
// receives an empty or blank value.
var ErrRequired = errors.New("edi: value is required")

// An EDIError describes data that a field could not accept: a missing
// required value or temporal content that does not match the field format.
type EDIError struct {
	Field  string // kind of the field, e.g. "date"
	Value  string // the raw value
	Reason string
	Err    error // underlying cause, if any
}

func (e *EDIError) Error() string {
	s := "edi: " + e.Field + " field: " + e.Reason
	if e.Value != "" {
		s += " (value " + strconv.Quote(e.Value) + ")"
	}
	if e.Err != nil && e.Err != ErrRequired {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *EDIError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEDI.
func (e *EDIError) Is(target error) bool { return target == ErrEDI }

// A ValidationError describes well-formed text that a field does not permit,
// such as an enum value outside its choices or non-digit numeric content.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "edi: " + e.Field + " field: " + e.Reason + " (value " + strconv.Quote(e.Value) + ")"
}

// Is reports whether target is ErrEDI.
func (e *ValidationError) Is(target error) bool { return target == ErrEDI }

// A BadFormatError describes an invalid field or record model declaration.
// It is returned when a field is constructed or a model is registered, never
// while encoding data.
type BadFormatError struct {
	Reason string
	Err    error
}

func (e *BadFormatError) Error() string {
	if e.Err != nil {
		return "edi: bad format: " + e.Reason + ": " + e.Err.Error()
	}
	return "edi: bad format: " + e.Reason
}

func (e *BadFormatError) Unwrap() error { return e.Err }

func badFormat(reason string) error {
	return &BadFormatError{Reason: reason}
}

func requiredError(k Kind, raw string) error {
	return &EDIError{Field: k.String(), Value: raw, Reason: "value is required", Err: ErrRequired}
}

func validationError(k Kind, raw, reason string) error {
	return &ValidationError{Field: k.String(), Value: raw, Reason: reason}
}

func fmtValue(v any) string {
	return fmt.Sprintf("%v", v)
}
