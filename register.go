package edi

import "strconv"

// FieldDecl names a field of a record model.
type FieldDecl struct {
	Name  string
	Field Field
}

// Model is implemented by record model declarations. Fields returns the
// declared fields in column order.
type Model interface {
	ModelName() string
	Fields() []FieldDecl
}

// RecordModel is a Model declared as a plain list of fields.
type RecordModel struct {
	Name  string
	Decls []FieldDecl
}

// NewModel returns a RecordModel with the given fields.
func NewModel(name string, decls ...FieldDecl) *RecordModel {
	return &RecordModel{Name: name, Decls: decls}
}

func (m *RecordModel) ModelName() string   { return m.Name }
func (m *RecordModel) Fields() []FieldDecl { return m.Decls }

// A Registration is a record model that passed Register.
type Registration struct {
	model       Model
	name        string
	fields      []FieldDecl
	identifier  *Identifier
	occurrences int
	width       int
}

// A RegisterOption configures Register.
type RegisterOption func(*Registration)

// WithOccurrences sets how many times a record of the model may appear in one
// document. The default is 1.
func WithOccurrences(n int) RegisterOption {
	return func(r *Registration) { r.occurrences = n }
}

// Register validates a record model declaration. The first field of the
// model must be its only Identifier and occurrences must be at least 1.
// Field values are not checked; that happens when records are encoded.
func Register(m Model, opts ...RegisterOption) (*Registration, error) {
	if m == nil {
		return nil, badFormat("not a record model")
	}
	if rm, ok := m.(*RecordModel); ok && rm == nil {
		return nil, badFormat("not a record model")
	}

	r := &Registration{model: m, name: m.ModelName(), occurrences: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.name == "" {
		return nil, badFormat("record model name must not be empty")
	}

	decls := m.Fields()
	if len(decls) == 0 {
		return nil, badFormat("record model " + r.name + " has no identifier")
	}
	id, ok := decls[0].Field.(*Identifier)
	if !ok || id == nil {
		return nil, badFormat("record model " + r.name + " must declare an identifier as its first field")
	}

	seen := make(map[string]bool, len(decls))
	for i, d := range decls {
		if d.Name == "" {
			return nil, badFormat("record model " + r.name + " field " + strconv.Itoa(i) + " has no name")
		}
		if seen[d.Name] {
			return nil, badFormat("record model " + r.name + " declares field " + d.Name + " twice")
		}
		seen[d.Name] = true
		if d.Field == nil {
			return nil, badFormat("record model " + r.name + " field " + d.Name + " has no type")
		}
		if _, isID := d.Field.(*Identifier); isID && i > 0 {
			return nil, badFormat("record model " + r.name + " declares more than one identifier")
		}
		r.width += d.Field.Width()
	}

	if r.occurrences < 1 {
		return nil, badFormat("record model " + r.name + " occurrences must be at least 1, have " + strconv.Itoa(r.occurrences))
	}

	r.identifier = id
	r.fields = append([]FieldDecl(nil), decls...)
	return r, nil
}

func (r *Registration) Model() Model            { return r.model }
func (r *Registration) Name() string            { return r.name }
func (r *Registration) Occurrences() int        { return r.occurrences }
func (r *Registration) Identifier() *Identifier { return r.identifier }
func (r *Registration) Width() int              { return r.width }

// Fields returns a copy of the model's field declarations.
func (r *Registration) Fields() []FieldDecl {
	return append([]FieldDecl(nil), r.fields...)
}
