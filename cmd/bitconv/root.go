package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitconv"
	"github.com/hupe1980/bitconv/codec"
)

// app carries state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string

	cfg    *Config
	logger *bitconv.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "bitconv",
		Short:         "Convert integers between notations at a fixed bit width",
		Long:          `Converts signed decimal, unsigned decimal, binary and hexadecimal values using two's-complement semantics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newConvertCmd(a),
		newBatchCmd(a),
		newWidthsCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}

	level, err := parseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(a.stderr, opts)
	} else {
		handler = slog.NewTextHandler(a.stderr, opts)
	}

	a.cfg = cfg
	a.logger = bitconv.NewLogger(handler)
	return nil
}

func (a *app) converter(extra ...bitconv.Option) *bitconv.Converter {
	cd, ok := codec.ByName(a.cfg.Codec)
	if !ok {
		cd = codec.Default
	}
	opts := append([]bitconv.Option{
		bitconv.WithLogger(a.logger),
		bitconv.WithCodec(cd),
	}, extra...)
	return bitconv.New(opts...)
}
