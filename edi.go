// Package edi provides typed fields for fixed-width EDI records.
//
// A Field turns the raw text of one fixed-width column into a typed value
// (Encode) and a typed value back into fixed-width text (Format). Fields are
// grouped into record models, which are validated by Register before the
// Decoder and Encoder use them to read and write whole lines.
package edi

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies one of the field kinds supported by the package.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindDecimal
	KindDate
	KindTime
	KindDateTime
	KindEnum
	KindIdentifier
)

var kindNames = map[Kind]string{
	KindString:     "string",
	KindInteger:    "integer",
	KindDecimal:    "decimal",
	KindDate:       "date",
	KindTime:       "time",
	KindDateTime:   "datetime",
	KindEnum:       "enum",
	KindIdentifier: "identifier",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Field is the interface implemented by every field kind.
//
// Encode converts the raw text of a field into its typed value. An empty or
// blank raw value is absent: Encode returns an error wrapping ErrRequired if
// the field is required and a nil value otherwise.
//
// Format is the reverse of Encode. It returns exactly Width characters. A nil
// value is formatted as an absent field if the field is optional.
//
// Fields are immutable and may be shared between goroutines.
type Field interface {
	Kind() Kind
	Width() int
	Required() bool
	Encode(raw string) (any, error)
	Format(v any) (string, error)

	field()
}

// An Option configures a field at construction.
type Option func(*base)

// Optional marks a field as not required.
func Optional() Option {
	return func(b *base) { b.required = false }
}

// Must returns f or panics if err is not nil. It is intended for
// package-level field and model declarations.
func Must[F any](f F, err error) F {
	if err != nil {
		panic(err)
	}
	return f
}

// base holds the configuration shared by all field kinds.
type base struct {
	kind     Kind
	width    int
	required bool
}

func newBase(k Kind, width int, opts []Option) (base, error) {
	if width < 1 {
		return base{}, badFormat(k.String() + " field width must be positive")
	}
	b := base{kind: k, width: width, required: true}
	for _, opt := range opts {
		opt(&b)
	}
	return b, nil
}

func (b base) Kind() Kind     { return b.kind }
func (b base) Width() int     { return b.width }
func (b base) Required() bool { return b.required }
func (b base) field()         {}

// absent applies the required rule to a blank raw value. ok reports whether
// raw was blank.
func (b base) absent(raw string) (ok bool, err error) {
	if strings.TrimSpace(raw) != "" {
		return false, nil
	}
	if b.required {
		return true, requiredError(b.kind, raw)
	}
	return true, nil
}

// formatAbsent renders a nil value.
func (b base) formatAbsent(fill byte) (string, error) {
	if b.required {
		return "", requiredError(b.kind, "")
	}
	return strings.Repeat(string(fill), b.width), nil
}

// columns returns the number of columns s occupies.
func columns(s string) int {
	return utf8.RuneCountInString(s)
}

// padRight pads s with spaces to width columns.
func padRight(s string, width int) string {
	if n := columns(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft pads s with c to width columns.
func padLeft(s string, width int, c byte) string {
	if n := columns(s); n < width {
		return strings.Repeat(string(c), width-n) + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
