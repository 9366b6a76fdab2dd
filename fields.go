package edi

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// String is a text field. Encode returns the raw value as is, including any
// padding.
type String struct {
	base
}

// NewString returns a String field occupying width columns. Columns are
// counted in characters; an Encoder counting bytes rejects values holding
// multi-byte characters, since they cannot fill the field exactly.
func NewString(width int, opts ...Option) (*String, error) {
	b, err := newBase(KindString, width, opts)
	if err != nil {
		return nil, err
	}
	return &String{base: b}, nil
}

// Encode returns raw unchanged, or nil if raw is blank and the field is
// optional.
func (f *String) Encode(raw string) (any, error) {
	if blank, err := f.absent(raw); blank {
		return nil, err
	}
	return raw, nil
}

// Format pads a string value on the right with spaces.
func (f *String) Format(v any) (string, error) {
	if v == nil {
		return f.formatAbsent(' ')
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(f.kind, v)
	}
	if columns(s) > f.width {
		return "", validationError(f.kind, s, "value is longer than "+strconv.Itoa(f.width)+" columns")
	}
	return padRight(s, f.width), nil
}

// Integer is a whole number field. The raw value must only contain decimal
// digits; leading zeros are permitted. Encode returns an int64.
type Integer struct {
	base
}

// NewInteger returns an Integer field occupying width columns.
func NewInteger(width int, opts ...Option) (*Integer, error) {
	b, err := newBase(KindInteger, width, opts)
	if err != nil {
		return nil, err
	}
	return &Integer{base: b}, nil
}

// Encode parses raw as a base 10 int64.
func (f *Integer) Encode(raw string) (any, error) {
	if blank, err := f.absent(raw); blank {
		return nil, err
	}
	if err := f.checkDigits(raw); err != nil {
		return nil, err
	}
	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, validationError(f.kind, raw, "value is out of range")
	}
	return i, nil
}

func (f *Integer) checkDigits(raw string) error {
	if !isDigits(raw) {
		return validationError(f.kind, raw, "value must only contain digits")
	}
	if len(raw) > f.width {
		return validationError(f.kind, raw, "value is longer than "+strconv.Itoa(f.width)+" columns")
	}
	return nil
}

// Format renders an integer value padded on the left with zeros.
func (f *Integer) Format(v any) (string, error) {
	if v == nil {
		return f.formatAbsent(' ')
	}
	var s string
	switch i := v.(type) {
	case int:
		s = strconv.FormatInt(int64(i), 10)
	case int8:
		s = strconv.FormatInt(int64(i), 10)
	case int16:
		s = strconv.FormatInt(int64(i), 10)
	case int32:
		s = strconv.FormatInt(int64(i), 10)
	case int64:
		s = strconv.FormatInt(i, 10)
	case uint:
		s = strconv.FormatUint(uint64(i), 10)
	case uint8:
		s = strconv.FormatUint(uint64(i), 10)
	case uint16:
		s = strconv.FormatUint(uint64(i), 10)
	case uint32:
		s = strconv.FormatUint(uint64(i), 10)
	case uint64:
		s = strconv.FormatUint(i, 10)
	default:
		return "", typeError(f.kind, v)
	}
	if s[0] == '-' {
		return "", validationError(f.kind, s, "value must not be negative")
	}
	if len(s) > f.width {
		return "", validationError(f.kind, s, "value is longer than "+strconv.Itoa(f.width)+" columns")
	}
	return padLeft(s, f.width, '0'), nil
}

// Decimal is a fixed-point number field with an implied decimal point. The
// last DecimalDigits columns hold the fractional part. Encode returns a
// decimal.Decimal with exactly DecimalDigits fractional digits.
type Decimal struct {
	base
	integerDigits int
	decimalDigits int
}

// NewDecimal returns a Decimal field. Its width is integerDigits plus
// decimalDigits.
func NewDecimal(integerDigits, decimalDigits int, opts ...Option) (*Decimal, error) {
	if integerDigits < 0 || decimalDigits < 0 {
		return nil, badFormat("decimal digits must not be negative")
	}
	b, err := newBase(KindDecimal, integerDigits+decimalDigits, opts)
	if err != nil {
		return nil, err
	}
	return &Decimal{base: b, integerDigits: integerDigits, decimalDigits: decimalDigits}, nil
}

func (f *Decimal) IntegerDigits() int { return f.integerDigits }
func (f *Decimal) DecimalDigits() int { return f.decimalDigits }

// Encode splits raw into its integer and fractional digits.
func (f *Decimal) Encode(raw string) (any, error) {
	if blank, err := f.absent(raw); blank {
		return nil, err
	}
	if !isDigits(raw) {
		return nil, validationError(f.kind, raw, "value must only contain digits")
	}
	if len(raw) > f.width {
		return nil, validationError(f.kind, raw, "value is longer than "+strconv.Itoa(f.width)+" columns")
	}
	coef, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, validationError(f.kind, raw, "value must only contain digits")
	}
	return decimal.NewFromBigInt(coef, -int32(f.decimalDigits)), nil
}

// Format renders a decimal value without a decimal point, padded on the left
// with zeros. The value must not have more fractional digits than the field.
func (f *Decimal) Format(v any) (string, error) {
	if v == nil {
		return f.formatAbsent(' ')
	}
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x == nil {
			return f.formatAbsent(' ')
		}
		d = *x
	default:
		return "", typeError(f.kind, v)
	}
	if d.IsNegative() {
		return "", validationError(f.kind, d.String(), "value must not be negative")
	}
	places := int32(f.decimalDigits)
	if !d.Equal(d.Truncate(places)) {
		return "", validationError(f.kind, d.String(), "value has more than "+strconv.Itoa(f.decimalDigits)+" decimal digits")
	}
	s := d.Shift(places).StringFixed(0)
	if len(s) > f.width {
		return "", validationError(f.kind, d.String(), "value is longer than "+strconv.Itoa(f.width)+" columns")
	}
	return padLeft(s, f.width, '0'), nil
}

func typeError(k Kind, v any) error {
	return &ValidationError{Field: k.String(), Value: fmtValue(v), Reason: "unsupported value type"}
}
