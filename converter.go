package bitconv

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitconv/codec"
	"github.com/hupe1980/bitconv/history"
	"github.com/hupe1980/bitconv/resource"
)

// Converter runs conversions with logging, metrics and an optional session
// history. The conversion itself is the pure Convert function; a Converter is
// safe for concurrent use.
type Converter struct {
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
	history *history.Log
	ctrl    *resource.Controller
}

// New creates a Converter.
func New(optFns ...Option) *Converter {
	opts := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Converter{
		codec:   opts.codec,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
		ctrl:    resource.NewController(opts.resources),
	}
	if opts.historyCapacity > 0 {
		c.history = history.New(opts.historyCapacity)
	}
	return c
}

// Convert converts a single request. ctx only carries logging context.
func (c *Converter) Convert(ctx context.Context, req Request) Result {
	start := time.Now()
	r := Convert(req)

	c.metrics.RecordConvert(req.InputType, time.Since(start), r.err)
	c.logger.LogConvert(ctx, req, r.err)
	c.record(req, r)

	return r
}

// ConvertBatch converts every request independently. Results are returned in
// request order, each carrying its own success or failure. The returned error
// is non-nil only if ctx is canceled before all requests were converted, in
// which case no results are returned.
func (c *Converter) ConvertBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i := range reqs {
		if err := c.ctrl.AcquireWorker(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer c.ctrl.ReleaseWorker()
			if err := c.ctrl.Wait(gctx); err != nil {
				return err
			}
			results[i] = c.Convert(gctx, reqs[i])
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.logger.LogBatch(ctx, len(reqs), 0, err)
		return nil, err
	}

	failed := 0
	for i := range results {
		if !results[i].OK() {
			failed++
		}
	}
	c.metrics.RecordBatch(len(reqs), failed, time.Since(start))
	c.logger.LogBatch(ctx, len(reqs), failed, nil)

	return results, nil
}

// Marshal encodes r.Output() with the configured codec.
func (c *Converter) Marshal(r Result) ([]byte, error) {
	return c.codec.Marshal(r.Output())
}

// Codec returns the configured codec.
func (c *Converter) Codec() codec.Codec { return c.codec }

// History returns the session history, or nil if history is disabled.
func (c *Converter) History() *history.Log { return c.history }

func (c *Converter) record(req Request, r Result) {
	if c.history == nil {
		return
	}
	out := r.Output()
	c.history.Append(history.Entry{
		Value:     req.Value,
		Bits:      uint32(req.Bits),
		InputType: req.InputType.String(),
		Binary:    out.BinaryText,
		Hex:       out.HexText,
		Signed:    out.SignedText,
		Unsigned:  out.UnsignedText,
		ErrorKind: out.ErrorKind,
		Message:   out.Message,
	})
}
