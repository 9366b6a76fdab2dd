package edi

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Marshal returns the fixed-width encoding of records, one line per record.
//
// Each record is formatted with the registration whose model name matches
// Record.Model. Fields are written in the order the model declares them;
// fields missing from the record are formatted as nil. The identifier is
// always written, whatever the record holds for it.
func Marshal(records []Record, regs ...*Registration) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	enc := NewEncoder(buff, regs...)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// An Encoder writes records of the registered models to an output stream.
type Encoder struct {
	w                   *bufio.Writer
	regs                map[string]*Registration
	useCodepointIndices bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, regs ...*Registration) *Encoder {
	e := &Encoder{
		w:    bufio.NewWriter(w),
		regs: make(map[string]*Registration, len(regs)),
	}
	for _, reg := range regs {
		if _, ok := e.regs[reg.Name()]; !ok {
			e.regs[reg.Name()] = reg
		}
	}
	return e
}

// SetUseCodepointIndices configures whether field widths count bytes (the
// default) or UTF-8 codepoints. With byte widths, a value containing
// multi-byte characters cannot fill its field exactly and is rejected.
func (e *Encoder) SetUseCodepointIndices(use bool) {
	e.useCodepointIndices = use
}

// Encode writes rec followed by a newline. Call Flush once done.
func (e *Encoder) Encode(rec Record) error {
	reg, ok := e.regs[rec.Model]
	if !ok {
		return errors.Wrapf(ErrUnknownRecord, "record %s", rec.Model)
	}

	var b strings.Builder
	b.Grow(reg.Width() + 1)
	for i, decl := range reg.fields {
		var (
			s   string
			err error
		)
		if i == 0 {
			s = reg.Identifier().Value()
		} else {
			v, _ := rec.Get(decl.Name)
			s, err = decl.Field.Format(v)
		}
		if err != nil {
			return errors.Wrapf(err, "record %s field %s", reg.Name(), decl.Name)
		}
		width, unit := len(s), "bytes"
		if e.useCodepointIndices {
			width, unit = columns(s), "columns"
		}
		if width != decl.Field.Width() {
			return errors.Errorf("record %s field %s: value %q is %d %s wide, want %d", reg.Name(), decl.Name, s, width, unit, decl.Field.Width())
		}
		b.WriteString(s)
	}
	b.WriteByte('\n')

	_, err := e.w.WriteString(b.String())
	return err
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}
