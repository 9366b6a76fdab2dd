package edi

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownRecord is returned when no registered model matches the
	// identifier at the start of a line.
	ErrUnknownRecord = errors.New("edi: unknown record identifier")

	// ErrOccurrences is returned when a document holds more records of a
	// model than its registration allows.
	ErrOccurrences = errors.New("edi: too many occurrences of record")
)

// Unmarshal decodes every record in data.
func Unmarshal(data []byte, regs ...*Registration) ([]Record, error) {
	return NewDecoder(bytes.NewReader(data), regs...).ReadAll()
}

// A Decoder reads records of the registered models from an input stream.
// Each line is one record; the model is chosen by the identifier at the start
// of the line. When several models share an identifier the first one wins.
type Decoder struct {
	data                *bufio.Reader
	regs                []*Registration
	seen                map[*Registration]int
	lineNo              int
	done                bool
	useCodepointIndices bool
	log                 zerolog.Logger
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, regs ...*Registration) *Decoder {
	return &Decoder{
		data: bufio.NewReader(r),
		regs: regs,
		seen: make(map[*Registration]int, len(regs)),
		log:  zerolog.Nop(),
	}
}

// SetUseCodepointIndices configures whether field widths count bytes (the
// default) or UTF-8 codepoints.
func (d *Decoder) SetUseCodepointIndices(use bool) {
	d.useCodepointIndices = use
}

// SetLogger sets the logger the decoder reports progress to.
func (d *Decoder) SetLogger(l zerolog.Logger) {
	d.log = l
}

// Decode reads the next record. Blank lines are skipped. If there is no data
// remaining, Decode returns io.EOF.
func (d *Decoder) Decode() (Record, error) {
	for {
		raw, err := d.readLine()
		if err != nil {
			return Record{}, err
		}
		if strings.TrimSpace(raw) == "" {
			d.log.Debug().Int("line", d.lineNo).Msg("skipping blank line")
			continue
		}
		return d.decodeLine(raw)
	}
}

// ReadAll decodes records until the end of the input.
func (d *Decoder) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := d.Decode()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

func (d *Decoder) readLine() (string, error) {
	if d.done {
		return "", io.EOF
	}
	raw, err := d.data.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF {
		d.done = true
		if raw == "" {
			return "", io.EOF
		}
	}
	d.lineNo++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	return raw, nil
}

func (d *Decoder) decodeLine(raw string) (Record, error) {
	l, err := newLine(raw, d.useCodepointIndices)
	if err != nil {
		return Record{}, errors.Wrapf(err, "line %d", d.lineNo)
	}

	reg := d.match(l)
	if reg == nil {
		return Record{}, errors.Wrapf(ErrUnknownRecord, "line %d", d.lineNo)
	}
	d.seen[reg]++
	if d.seen[reg] > reg.Occurrences() {
		return Record{}, errors.Wrapf(ErrOccurrences, "line %d: record %s may occur %d times", d.lineNo, reg.Name(), reg.Occurrences())
	}

	rec := Record{Model: reg.Name(), Values: make([]Value, 0, len(reg.fields))}
	col := 0
	for _, decl := range reg.fields {
		v, err := decl.Field.Encode(l.columns(col, decl.Field.Width()))
		if err != nil {
			return Record{}, errors.Wrapf(err, "line %d: record %s field %s", d.lineNo, reg.Name(), decl.Name)
		}
		rec.Values = append(rec.Values, Value{Name: decl.Name, Value: v})
		col += decl.Field.Width()
	}
	if l.len() > col {
		d.log.Warn().Int("line", d.lineNo).Str("record", reg.Name()).Int("columns", l.len()).Int("width", col).Msg("ignoring columns past the end of the record")
	}

	d.log.Debug().Int("line", d.lineNo).Str("record", reg.Name()).Msg("decoded record")
	return rec, nil
}

func (d *Decoder) match(l line) *Registration {
	for _, reg := range d.regs {
		id := reg.Identifier()
		if l.columns(0, id.Width()) == id.Value() {
			return reg
		}
	}
	return nil
}
