package edi

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// component is the part of a calendar value a directive describes.
type component int

const (
	dateComponent component = 1 << iota
	timeComponent
)

type directive struct {
	layout    string // Go reference layout for the directive
	component component
}

// directives are the strftime directives a temporal format may use. Every
// directive renders a fixed number of digits.
var directives = map[byte]directive{
	'd': {"02", dateComponent},
	'm': {"01", dateComponent},
	'Y': {"2006", dateComponent},
	'y': {"06", dateComponent},
	'H': {"15", timeComponent},
	'M': {"04", timeComponent},
	'S': {"05", timeComponent},
}

// A temporalFormat is a compiled strftime-style format, e.g. "%d%m%Y".
type temporalFormat struct {
	pattern  string
	layout   string
	renderer *strftime.Strftime

	// shortYear is set when the pattern uses %y, which only holds the
	// years 1969 to 2068.
	shortYear bool
}

// compileFormat checks pattern against the components allowed for a field and
// returns the equivalent Go time layout.
func compileFormat(pattern string, allowed component) (temporalFormat, error) {
	if pattern == "" {
		return temporalFormat{}, badFormat("temporal format must not be empty")
	}

	var (
		layout    strings.Builder
		shortYear bool
	)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			if !isLiteral(c) {
				return temporalFormat{}, badFormat("temporal format " + pattern + " contains unsupported literal " + string(c))
			}
			layout.WriteByte(c)
			continue
		}
		i++
		if i == len(pattern) {
			return temporalFormat{}, badFormat("temporal format " + pattern + " ends with a lone %")
		}
		if pattern[i] == '%' {
			layout.WriteByte('%')
			continue
		}
		if pattern[i] == 'y' {
			shortYear = true
		}
		d, ok := directives[pattern[i]]
		if !ok {
			return temporalFormat{}, badFormat("temporal format " + pattern + " contains unknown directive %" + string(pattern[i]))
		}
		if d.component&allowed == 0 {
			return temporalFormat{}, badFormat("temporal format " + pattern + " cannot use directive %" + string(pattern[i]))
		}
		layout.WriteString(d.layout)
	}

	r, err := strftime.New(pattern)
	if err != nil {
		return temporalFormat{}, &BadFormatError{Reason: "temporal format " + pattern, Err: err}
	}
	return temporalFormat{pattern: pattern, layout: layout.String(), renderer: r, shortYear: shortYear}, nil
}

// isLiteral reports whether c may appear outside a directive. Letters, digits
// and underscores carry meaning in Go layouts and are rejected.
func isLiteral(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return false
	case c < ' ' || c > '~':
		return false
	}
	return true
}

// width is the number of columns the format renders to.
func (f temporalFormat) width() int {
	return len(f.render(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func (f temporalFormat) parse(raw string) (time.Time, error) {
	return time.Parse(f.layout, raw)
}

func (f temporalFormat) render(t time.Time) string {
	return f.renderer.FormatString(t)
}
