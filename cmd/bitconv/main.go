// Command bitconv converts integers between signed, unsigned, binary and
// hexadecimal notation at a given bit width.
//
// Usage:
//
//	bitconv convert --bits 8 --from signed -- -128
//	bitconv convert 0x7F --from hex --output json
//	bitconv batch requests.jsonl
//	bitconv widths
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		// A rejected value has already been reported on stdout.
		if !errors.Is(err, errConversionFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
