package edi

// Record is one decoded line of a document.
type Record struct {
	Model  string  // name of the record model
	Values []Value // field values in column order
}

// Value is the typed value of one field. Value is nil when the field is
// absent.
type Value struct {
	Name  string
	Value any
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the named field, or appends it.
func (r *Record) Set(name string, value any) {
	for i := range r.Values {
		if r.Values[i].Name == name {
			r.Values[i].Value = value
			return
		}
	}
	r.Values = append(r.Values, Value{Name: name, Value: value})
}
