package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ianlopshire/go-edi/layout"
)

type rootOptions struct {
	layoutPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "edifields",
		Short: "Decode fixed-width EDI documents",
		Long: `edifields reads fixed-width EDI documents using the record models
declared in a YAML layout file.

  edifields validate -l layout.yaml        # check the layout
  edifields decode -l layout.yaml data.txt # print records as JSON lines`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.layoutPath, "layout", "l", "layout.yaml", "layout file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	cmd.AddCommand(newValidateCmd(opts), newDecodeCmd(opts))
	return cmd
}

func (o *rootOptions) logger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func (o *rootOptions) load(log zerolog.Logger) (*layout.Layout, error) {
	l, err := layout.Load(o.layoutPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("layout", o.layoutPath).Int("records", len(l.Registrations())).Msg("loaded layout")
	return l, nil
}
