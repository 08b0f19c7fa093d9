package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitconv"
)

// errConversionFailed signals a rejected value after the failure was printed.
var errConversionFailed = errors.New("conversion failed")

func newConvertCmd(a *app) *cobra.Command {
	var (
		bits   int
		from   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a single value",
		Long: `Converts VALUE written in the --from notation into all four notations.
Negative values must follow "--", e.g. bitconv convert --bits 8 -- -128.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = a.cfg.Bits
			}
			if !cmd.Flags().Changed("from") {
				from = a.cfg.InputType
			}
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output
			}

			width, err := bitconv.BitWidthFromInt(bits)
			if err != nil {
				return err
			}
			n, err := bitconv.ParseNotation(from)
			if err != nil {
				return err
			}

			c := a.converter()
			r := c.Convert(cmd.Context(), bitconv.Request{Value: args[0], Bits: width, InputType: n})

			switch output {
			case "json":
				b, err := c.Marshal(r)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(b))
			case "text":
				writeText(a, r)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}

			if !r.OK() {
				return errConversionFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&bits, "bits", "b", 8, "bit width")
	cmd.Flags().StringVarP(&from, "from", "f", "signed", "input notation (signed, unsigned, binary, hex)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	return cmd
}

func writeText(a *app, r bitconv.Result) {
	if !r.OK() {
		fmt.Fprintf(a.stdout, "error (%s): %s\n", r.Err().Kind, r.Err().Message)
		return
	}

	v, _ := r.Value()
	p, _ := r.Projections()
	var pattern strings.Builder
	for _, bit := range p.BitPattern {
		if bit {
			pattern.WriteByte('#')
		} else {
			pattern.WriteByte('.')
		}
	}

	fmt.Fprintf(a.stdout, "bits:     %d\n", p.Bits)
	fmt.Fprintf(a.stdout, "signed:   %s\n", p.Signed)
	fmt.Fprintf(a.stdout, "unsigned: %s\n", p.Unsigned)
	fmt.Fprintf(a.stdout, "binary:   %s\n", p.GroupedBinary())
	fmt.Fprintf(a.stdout, "hex:      0x%s\n", p.Hex)
	fmt.Fprintf(a.stdout, "pattern:  %s (%d set)\n", pattern.String(), v.OnesCount())
}
