package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitconv"
)

func newWidthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "widths",
		Short: "List standard bit widths and their ranges",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BITS\tSIGNED\tUNSIGNED\tHEX DIGITS")
			for _, w := range bitconv.StandardWidths {
				fmt.Fprintf(tw, "%d\t[%s, %s]\t[0, %s]\t%d\n",
					w, w.MinSigned(), w.MaxSigned(), w.MaxUnsigned(), w.HexDigits())
			}
			return tw.Flush()
		},
	}
}
