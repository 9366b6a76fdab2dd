package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate", "-l", "testdata/invoice.yaml")
	require.NoError(t, err)
	require.Equal(t, ""+
		"header\tid=H\tfields=3\twidth=14\toccurrences=1\n"+
		"item\tid=I\tfields=5\twidth=17\toccurrences=10\n"+
		"trailer\tid=T\tfields=3\twidth=15\toccurrences=1\n", out)
}

func TestValidate_MissingLayout(t *testing.T) {
	_, err := run(t, "", "validate", "-l", "testdata/missing.yaml")
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	out, err := run(t, "", "decode", "-l", "testdata/invoice.yaml", "testdata/invoice.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var rec struct {
		Record string         `json:"record"`
		Fields map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	require.Equal(t, "item", rec.Record)
	require.Equal(t, "AB-001", rec.Fields["sku"])
	require.Equal(t, float64(2), rec.Fields["quantity"])
	require.Equal(t, "12.5", rec.Fields["price"])

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "2012-02-23", rec.Fields["issued"])

	require.NoError(t, json.Unmarshal([]byte(lines[3]), &rec))
	require.Nil(t, rec.Fields["closed"])
}

func TestDecode_Stdin(t *testing.T) {
	out, err := run(t, "T0000\n", "decode", "-v", "-l", "testdata/invoice.yaml")
	require.NoError(t, err)
	require.JSONEq(t, `{"record":"trailer","fields":{"type":"T","count":0,"closed":null}}`, out)
}

func TestDecode_InvalidDocument(t *testing.T) {
	_, err := run(t, "Z0000\n", "decode", "-l", "testdata/invoice.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown record identifier")
}
