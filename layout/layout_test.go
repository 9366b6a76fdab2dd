package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ianlopshire/go-edi"
)

func TestLoad(t *testing.T) {
	l, err := Load("testdata/invoice.yaml")
	require.NoError(t, err)

	regs := l.Registrations()
	require.Len(t, regs, 3)
	require.Equal(t, "header", regs[0].Name())
	require.Equal(t, 1, regs[0].Occurrences())
	require.Equal(t, 14, regs[0].Width())
	require.Equal(t, 10, regs[1].Occurrences())
	require.Equal(t, "T", regs[2].Identifier().Value())

	item, ok := l.Lookup("item")
	require.True(t, ok)
	require.Equal(t, edi.KindDecimal, item.Fields()[3].Field.Kind())
	require.False(t, item.Fields()[4].Field.Required())

	_, ok = l.Lookup("missing")
	require.False(t, ok)

	records, err := edi.Unmarshal([]byte("H23022012ACME \nIAB-001002001250A\nT0001\n"), regs...)
	require.NoError(t, err)
	require.Len(t, records, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "read layout")
}

func TestParse_Errors(t *testing.T) {
	for _, tt := range []struct {
		name      string
		yaml      string
		badFormat bool
	}{
		{
			name: "no records",
			yaml: "records: []",
		},
		{
			name: "unknown key",
			yaml: "records:\n  - name: a\n    width: 3\n",
		},
		{
			name: "invalid yaml",
			yaml: "records: [",
		},
		{
			name: "duplicate record",
			yaml: "records:\n" +
				"  - {name: a, fields: [{name: type, field: 'identifier,A'}]}\n" +
				"  - {name: a, fields: [{name: type, field: 'identifier,B'}]}\n",
		},
		{
			name:      "identifier not first",
			yaml:      "records:\n  - {name: a, fields: [{name: n, field: 'string,1'}, {name: type, field: 'identifier,A'}]}\n",
			badFormat: true,
		},
		{
			name:      "zero occurrences",
			yaml:      "records:\n  - {name: a, occurrences: 0, fields: [{name: type, field: 'identifier,A'}]}\n",
			badFormat: true,
		},
		{
			name:      "bad field declaration",
			yaml:      "records:\n  - {name: a, fields: [{name: type, field: 'identifier,A'}, {name: e, field: 'enum,AB|A'}]}\n",
			badFormat: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.Nil(t, l)
			if tt.badFormat {
				var bfe *edi.BadFormatError
				require.ErrorAs(t, err, &bfe)
			}
		})
	}
}
