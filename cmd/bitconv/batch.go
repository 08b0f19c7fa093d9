package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitconv"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Convert JSON-lines requests",
		Long: `Reads one JSON request per line, e.g. {"value":"-5","bits":8,"inputType":"signed"},
from FILE or stdin and writes one JSON output per line in the same order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}

			c := a.converter(
				bitconv.WithMaxWorkers(workers),
				bitconv.WithRateLimit(a.cfg.Batch.RatePerSec, a.cfg.Batch.Burst),
			)

			reqs, err := readRequests(in, c)
			if err != nil {
				return err
			}

			results, err := c.ConvertBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.stdout)
			for _, r := range results {
				b, err := c.Marshal(r)
				if err != nil {
					return err
				}
				w.Write(b)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent conversions (0 = GOMAXPROCS)")
	return cmd
}

func readRequests(r io.Reader, c *bitconv.Converter) ([]bitconv.Request, error) {
	var reqs []bitconv.Request
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var req bitconv.Request
		if err := c.Codec().Unmarshal([]byte(text), &req); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return reqs, nil
}
