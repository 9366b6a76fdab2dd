package edi

import "strings"

// Enum is a text field restricted to a closed set of choices. All choices
// have the same width, which is the width of the field.
type Enum struct {
	base
	choices []string
}

// NewEnum returns an Enum field accepting exactly the given choices.
func NewEnum(choices []string, opts ...Option) (*Enum, error) {
	return newEnum(KindEnum, choices, opts)
}

func newEnum(k Kind, choices []string, opts []Option) (*Enum, error) {
	if len(choices) == 0 {
		return nil, badFormat(k.String() + " field needs at least one choice")
	}
	width := columns(choices[0])
	for _, c := range choices[1:] {
		if columns(c) != width {
			return nil, badFormat(k.String() + " choices " + strings.Join(choices, ",") + " differ in width")
		}
	}
	b, err := newBase(k, width, opts)
	if err != nil {
		return nil, err
	}
	return &Enum{base: b, choices: append([]string(nil), choices...)}, nil
}

// Choices returns a copy of the permitted values.
func (f *Enum) Choices() []string {
	return append([]string(nil), f.choices...)
}

func (f *Enum) contains(s string) bool {
	for _, c := range f.choices {
		if c == s {
			return true
		}
	}
	return false
}

// Encode returns raw if it is one of the choices.
func (f *Enum) Encode(raw string) (any, error) {
	if blank, err := f.absent(raw); blank {
		return nil, err
	}
	if !f.contains(raw) {
		return nil, validationError(f.kind, raw, "value is not one of "+strings.Join(f.choices, ","))
	}
	return raw, nil
}

func (f *Enum) Format(v any) (string, error) {
	if v == nil {
		return f.formatAbsent(' ')
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(f.kind, v)
	}
	if !f.contains(s) {
		return "", validationError(f.kind, s, "value is not one of "+strings.Join(f.choices, ","))
	}
	return s, nil
}

// Identifier is an Enum with a single literal value. It tags the record
// model a line belongs to and must be the first field of every model.
type Identifier struct {
	*Enum
}

// NewIdentifier returns an Identifier field for value.
func NewIdentifier(value string, opts ...Option) (*Identifier, error) {
	if value == "" {
		return nil, badFormat("identifier value must not be empty")
	}
	e, err := newEnum(KindIdentifier, []string{value}, opts)
	if err != nil {
		return nil, err
	}
	return &Identifier{Enum: e}, nil
}

// Value returns the literal the identifier matches.
func (f *Identifier) Value() string {
	return f.choices[0]
}
