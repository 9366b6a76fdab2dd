// Package layout loads record model declarations from YAML.
//
// A layout lists the record models of a document in the order they are
// matched:
//
//	records:
//	  - name: header
//	    occurrences: 1
//	    fields:
//	      - {name: type, field: "identifier,000"}
//	      - {name: issued, field: "date,8,%d%m%Y"}
//	      - {name: sender, field: "string,20,optional"}
//
// Field declarations use the syntax of edi.ParseField.
package layout

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ianlopshire/go-edi"
)

// Layout is a set of registered record models.
type Layout struct {
	regs []*edi.Registration
}

// Registrations returns the registered models in declaration order.
func (l *Layout) Registrations() []*edi.Registration {
	return append([]*edi.Registration(nil), l.regs...)
}

// Lookup returns the registration of the named model.
func (l *Layout) Lookup(name string) (*edi.Registration, bool) {
	for _, reg := range l.regs {
		if reg.Name() == name {
			return reg, true
		}
	}
	return nil, false
}

type document struct {
	Records []recordDecl `yaml:"records"`
}

type recordDecl struct {
	Name        string      `yaml:"name"`
	Occurrences *int        `yaml:"occurrences"`
	Fields      []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name  string `yaml:"name"`
	Field string `yaml:"field"`
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read layout")
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "layout %s", path)
	}
	return l, nil
}

// Parse parses a YAML layout and registers every record model in it. Unknown
// keys are rejected.
func Parse(data []byte) (*Layout, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}
	if len(doc.Records) == 0 {
		return nil, errors.New("layout declares no records")
	}

	l := &Layout{}
	names := make(map[string]bool, len(doc.Records))
	for i, rd := range doc.Records {
		if names[rd.Name] {
			return nil, errors.Errorf("record %d: duplicate record name %q", i, rd.Name)
		}
		names[rd.Name] = true

		reg, err := register(rd)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d (%s)", i, rd.Name)
		}
		l.regs = append(l.regs, reg)
	}
	return l, nil
}

func register(rd recordDecl) (*edi.Registration, error) {
	decls := make([]edi.FieldDecl, 0, len(rd.Fields))
	for _, fd := range rd.Fields {
		f, err := edi.ParseField(fd.Field)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", fd.Name)
		}
		decls = append(decls, edi.FieldDecl{Name: fd.Name, Field: f})
	}

	var opts []edi.RegisterOption
	if rd.Occurrences != nil {
		opts = append(opts, edi.WithOccurrences(*rd.Occurrences))
	}
	return edi.Register(edi.NewModel(rd.Name, decls...), opts...)
}
