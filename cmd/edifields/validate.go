package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every record model in the layout is well formed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.load(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, reg := range l.Registrations() {
				fmt.Fprintf(out, "%s\tid=%s\tfields=%d\twidth=%d\toccurrences=%d\n",
					reg.Name(), reg.Identifier().Value(), len(reg.Fields()), reg.Width(), reg.Occurrences())
			}
			return nil
		},
	}
}
