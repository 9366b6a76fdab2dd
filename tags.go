package edi

import (
	"strconv"
	"strings"
)

// ParseField builds a field from a compact declaration of the form
// "{kind},{args}[,optional]":
//
//	string,{width}
//	integer,{width}
//	decimal,{integerDigits}[,{decimalDigits}]
//	date,{width},{format}
//	time,{width},{format}
//	datetime,{width},{format}
//	enum,{choice}|{choice}...
//	identifier,{value}
//
// Arguments are split on commas, so a temporal format cannot contain one, and
// a trailing "optional" is always read as the option: an identifier whose
// value is "optional" must be built with NewIdentifier. An invalid
// declaration returns a BadFormatError.
func ParseField(tag string) (Field, error) {
	parts := strings.Split(tag, ",")
	var opts []Option
	if n := len(parts); n > 1 && parts[n-1] == "optional" {
		opts = append(opts, Optional())
		parts = parts[:n-1]
	}
	kind, args := parts[0], parts[1:]

	switch kind {
	case "string", "integer":
		if len(args) != 1 {
			return nil, tagError(tag, "want a width")
		}
		width, err := atoi(tag, args[0])
		if err != nil {
			return nil, err
		}
		if kind == "string" {
			return asField(NewString(width, opts...))
		}
		return asField(NewInteger(width, opts...))

	case "decimal":
		if len(args) != 1 && len(args) != 2 {
			return nil, tagError(tag, "want integer digits and optional decimal digits")
		}
		intDigits, err := atoi(tag, args[0])
		if err != nil {
			return nil, err
		}
		var decDigits int
		if len(args) == 2 {
			if decDigits, err = atoi(tag, args[1]); err != nil {
				return nil, err
			}
		}
		return asField(NewDecimal(intDigits, decDigits, opts...))

	case "date", "time", "datetime":
		if len(args) != 2 {
			return nil, tagError(tag, "want a width and a format")
		}
		width, err := atoi(tag, args[0])
		if err != nil {
			return nil, err
		}
		switch kind {
		case "date":
			return asField(NewDate(width, args[1], opts...))
		case "time":
			return asField(NewTime(width, args[1], opts...))
		}
		return asField(NewDateTime(width, args[1], opts...))

	case "enum":
		if len(args) != 1 || args[0] == "" {
			return nil, tagError(tag, "want choices separated by |")
		}
		return asField(NewEnum(strings.Split(args[0], "|"), opts...))

	case "identifier":
		if len(args) != 1 {
			return nil, tagError(tag, "want a value")
		}
		return asField(NewIdentifier(args[0], opts...))
	}
	return nil, tagError(tag, "unknown kind "+strconv.Quote(kind))
}

func atoi(tag, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, &BadFormatError{Reason: "field declaration " + strconv.Quote(tag), Err: err}
	}
	return i, nil
}

func tagError(tag, reason string) error {
	return badFormat("field declaration " + strconv.Quote(tag) + ": " + reason)
}

// asField keeps a failed constructor from returning a typed nil Field.
func asField[F Field](f F, err error) (Field, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}
