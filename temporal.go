package edi

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// temporal is shared by Date, Time and DateTime.
type temporal struct {
	base
	format temporalFormat
}

func newTemporal(k Kind, width int, pattern string, allowed component, opts []Option) (temporal, error) {
	b, err := newBase(k, width, opts)
	if err != nil {
		return temporal{}, err
	}
	f, err := compileFormat(pattern, allowed)
	if err != nil {
		return temporal{}, err
	}
	if w := f.width(); w != width {
		return temporal{}, badFormat(k.String() + " format " + pattern + " renders " + strconv.Itoa(w) + " columns, not " + strconv.Itoa(width))
	}
	return temporal{base: b, format: f}, nil
}

// Layout returns the strftime-style format of the field.
func (f temporal) Layout() string { return f.format.pattern }

// parse applies the absent rules of temporal fields. A value made only of
// zeros is absent when the field is optional. Content that does not match
// the format is an EDIError for required fields and absent otherwise.
func (f temporal) parse(raw string) (t time.Time, ok bool, err error) {
	if blank, err := f.absent(raw); blank {
		return time.Time{}, false, err
	}
	if !f.required && strings.Trim(raw, "0") == "" {
		return time.Time{}, false, nil
	}
	t, err = f.format.parse(raw)
	if err != nil {
		if !f.required {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, &EDIError{
			Field:  f.kind.String(),
			Value:  raw,
			Reason: "value does not match format " + f.format.pattern,
			Err:    err,
		}
	}
	return t, true, nil
}

// formatTime renders t, rejecting values the field cannot hold: years a %y
// directive would read back as another century, and years that do not fit
// the columns of the field.
func (f temporal) formatTime(t time.Time) (string, error) {
	if f.format.shortYear && (t.Year() < 1969 || t.Year() > 2068) {
		return "", validationError(f.kind, t.String(), "year "+strconv.Itoa(t.Year())+" cannot be written with %y")
	}
	s := f.format.render(t)
	if columns(s) != f.width {
		return "", validationError(f.kind, s, "value does not fit "+strconv.Itoa(f.width)+" columns")
	}
	return s, nil
}

// Date is a calendar date field. Encode returns a civil.Date.
type Date struct {
	temporal
}

// NewDate returns a Date field. format may only use the %d, %m, %y and %Y
// directives and must render exactly width columns.
func NewDate(width int, format string, opts ...Option) (*Date, error) {
	t, err := newTemporal(KindDate, width, format, dateComponent, opts)
	if err != nil {
		return nil, err
	}
	return &Date{temporal: t}, nil
}

func (f *Date) Encode(raw string) (any, error) {
	t, ok, err := f.parse(raw)
	if !ok {
		return nil, err
	}
	return civil.DateOf(t), nil
}

// Format renders a civil.Date or time.Time. An absent optional date is
// rendered as zeros.
func (f *Date) Format(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return f.formatAbsent('0')
	case civil.Date:
		if !x.IsValid() {
			return "", validationError(f.kind, x.String(), "invalid date")
		}
		return f.formatTime(x.In(time.UTC))
	case time.Time:
		return f.formatTime(x)
	}
	return "", typeError(f.kind, v)
}

// Time is a time of day field. Encode returns a civil.Time.
type Time struct {
	temporal
}

// NewTime returns a Time field. format may only use the %H, %M and %S
// directives and must render exactly width columns.
func NewTime(width int, format string, opts ...Option) (*Time, error) {
	t, err := newTemporal(KindTime, width, format, timeComponent, opts)
	if err != nil {
		return nil, err
	}
	return &Time{temporal: t}, nil
}

func (f *Time) Encode(raw string) (any, error) {
	t, ok, err := f.parse(raw)
	if !ok {
		return nil, err
	}
	return civil.TimeOf(t), nil
}

// Format renders a civil.Time or time.Time. An absent optional time is
// rendered as zeros.
func (f *Time) Format(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return f.formatAbsent('0')
	case civil.Time:
		if !x.IsValid() {
			return "", validationError(f.kind, x.String(), "invalid time")
		}
		return f.formatTime(time.Date(2000, time.January, 1, x.Hour, x.Minute, x.Second, x.Nanosecond, time.UTC))
	case time.Time:
		return f.formatTime(x)
	}
	return "", typeError(f.kind, v)
}

// DateTime is a date and time of day field. Encode returns a civil.DateTime.
type DateTime struct {
	temporal
}

// NewDateTime returns a DateTime field. format must render exactly width
// columns.
func NewDateTime(width int, format string, opts ...Option) (*DateTime, error) {
	t, err := newTemporal(KindDateTime, width, format, dateComponent|timeComponent, opts)
	if err != nil {
		return nil, err
	}
	return &DateTime{temporal: t}, nil
}

func (f *DateTime) Encode(raw string) (any, error) {
	t, ok, err := f.parse(raw)
	if !ok {
		return nil, err
	}
	return civil.DateTimeOf(t), nil
}

// Format renders a civil.DateTime or time.Time. An absent optional value is
// rendered as zeros.
func (f *DateTime) Format(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return f.formatAbsent('0')
	case civil.DateTime:
		if !x.IsValid() {
			return "", validationError(f.kind, x.String(), "invalid datetime")
		}
		return f.formatTime(x.In(time.UTC))
	case time.Time:
		return f.formatTime(x)
	}
	return "", typeError(f.kind, v)
}
