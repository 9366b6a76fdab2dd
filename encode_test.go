package edi

import (
	"bytes"
	"fmt"
	"log"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"
)

func ExampleMarshal() {
	item := Must(Register(NewModel("item",
		FieldDecl{Name: "type", Field: Must(NewIdentifier("I"))},
		FieldDecl{Name: "sku", Field: Must(NewString(6))},
		FieldDecl{Name: "quantity", Field: Must(NewInteger(3))},
		FieldDecl{Name: "price", Field: Must(NewDecimal(4, 2))},
	), WithOccurrences(10)))

	records := []Record{
		{Model: "item", Values: []Value{{"sku", "AB-1"}, {"quantity", 2}, {"price", dec("12.5")}}},
	}

	data, err := Marshal(records, item)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", data)
	// Output:
	// IAB-1  002001250
}

func TestMarshal(t *testing.T) {
	header, item, trailer := testRegistrations()
	issued := civil.Date{Year: 2012, Month: time.February, Day: 23}

	for _, tt := range []struct {
		name     string
		records  []Record
		expected string
	}{
		{
			name: "Full Document",
			records: []Record{
				{"header", []Value{{"issued", issued}, {"sender", "ACME"}}},
				{"item", []Value{{"sku", "AB-001"}, {"quantity", int64(2)}, {"price", dec("12.50")}, {"status", "A"}}},
				{"trailer", []Value{{"count", 1}}},
			},
			expected: "H23022012ACME \nIAB-001002001250A\nT0001\n",
		},
		{
			name: "Absent Optional Fields",
			records: []Record{
				{"header", []Value{{"issued", issued}}},
			},
			expected: "H23022012     \n",
		},
		{
			name: "Identifier Is Always Written",
			records: []Record{
				{"trailer", []Value{{"type", "X"}, {"count", 7}}},
			},
			expected: "T0007\n",
		},
		{
			name:     "No Records",
			records:  nil,
			expected: "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.records, header, item, trailer)
			require.NoError(t, err)
			require.Equal(t, tt.expected, string(data))
		})
	}
}

func TestMarshal_Errors(t *testing.T) {
	header, item, _ := testRegistrations()

	_, err := Marshal([]Record{{Model: "unknown"}}, header, item)
	require.ErrorIs(t, err, ErrUnknownRecord)

	_, err = Marshal([]Record{{Model: "header"}}, header)
	require.ErrorIs(t, err, ErrRequired)
	require.Contains(t, err.Error(), "field issued")

	_, err = Marshal([]Record{{Model: "item", Values: []Value{{"sku", "TOO-LONG"}, {"quantity", 1}, {"price", dec("1")}}}}, item)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestEncodeSetUseCodepointIndices(t *testing.T) {
	reg := Must(Register(NewModel("name",
		FieldDecl{Name: "type", Field: Must(NewIdentifier("N"))},
		FieldDecl{Name: "first", Field: Must(NewString(5))},
	)))
	rec := Record{Model: "name", Values: []Value{{"first", "PIÑA"}}}

	var buff bytes.Buffer
	enc := NewEncoder(&buff, reg)
	require.Error(t, enc.Encode(rec))

	buff.Reset()
	enc = NewEncoder(&buff, reg)
	enc.SetUseCodepointIndices(true)
	require.NoError(t, enc.Encode(rec))
	require.NoError(t, enc.Flush())
	require.Equal(t, "NPIÑA \n", buff.String())

	d := NewDecoder(&buff, reg)
	d.SetUseCodepointIndices(true)
	decoded, err := d.Decode()
	require.NoError(t, err)
	first, _ := decoded.Get("first")
	require.Equal(t, "PIÑA ", first)
}

// A value wider than its field is rejected whichever way widths are counted.
func TestEncode_FieldOverflow(t *testing.T) {
	reg := Must(Register(NewModel("header",
		FieldDecl{Name: "type", Field: Must(NewIdentifier("H"))},
		FieldDecl{Name: "issued", Field: Must(NewDate(8, "%d%m%Y"))},
	)))
	rec := Record{Model: "header", Values: []Value{{"issued", civil.Date{Year: 10000, Month: time.January, Day: 2}}}}

	for _, codepoints := range []bool{false, true} {
		var buff bytes.Buffer
		enc := NewEncoder(&buff, reg)
		enc.SetUseCodepointIndices(codepoints)
		require.ErrorIs(t, enc.Encode(rec), ErrEDI)
		require.NoError(t, enc.Flush())
		require.Empty(t, buff.String())
	}
}

func TestShortYearRoundTrip(t *testing.T) {
	f := Must(NewDate(6, "%d%m%y"))
	for _, year := range []int{1969, 1999, 2000, 2068} {
		d := civil.Date{Year: year, Month: time.March, Day: 4}
		s, err := f.Format(d)
		require.NoError(t, err)
		v, err := f.Encode(s)
		require.NoError(t, err)
		require.Equal(t, d, v)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	header, item, trailer := testRegistrations()
	data := "H23022012ACME \nIAB-001002001250A\nIAB-002010000099 \nT0002\n"

	records, err := Unmarshal([]byte(data), header, item, trailer)
	require.NoError(t, err)

	out, err := Marshal(records, header, item, trailer)
	require.NoError(t, err)
	require.Equal(t, data, string(out))
}
