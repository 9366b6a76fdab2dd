package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ianlopshire/go-edi"
)

type decodeOptions struct {
	codepoints bool
}

// jsonRecord is the output form of one record.
type jsonRecord struct {
	Record string         `json:"record"`
	Fields map[string]any `json:"fields"`
}

func newDecodeCmd(root *rootOptions) *cobra.Command {
	opts := &decodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a document and print one JSON object per record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd.ErrOrStderr())
			l, err := root.load(log)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open document")
				}
				defer f.Close()
				in = f
			}

			dec := edi.NewDecoder(in, l.Registrations()...)
			dec.SetUseCodepointIndices(opts.codepoints)
			dec.SetLogger(log)

			enc := json.NewEncoder(cmd.OutOrStdout())
			n := 0
			for {
				rec, err := dec.Decode()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				out := jsonRecord{Record: rec.Model, Fields: make(map[string]any, len(rec.Values))}
				for _, v := range rec.Values {
					out.Fields[v.Name] = v.Value
				}
				if err := enc.Encode(out); err != nil {
					return errors.Wrap(err, "write record")
				}
				n++
			}
			log.Info().Int("records", n).Msg("decoded document")
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.codepoints, "codepoints", false, "count field widths in UTF-8 codepoints instead of bytes")
	return cmd
}
