// Package bitconv converts integers between signed decimal, unsigned decimal,
// binary and hexadecimal at an arbitrary bit width, using two's-complement
// semantics.
//
// Every conversion goes through one canonical form: an EncodedValue holding a
// raw unsigned integer in [0, 2^bits-1]. All four notations are projections of
// that raw value, so they can never disagree with each other.
//
// # Quick Start
//
//	v, err := bitconv.Encode("-128", bitconv.Bits8, bitconv.Signed)
//	if err != nil {
//	    // err is a *bitconv.ConversionError
//	}
//	p := v.Project()
//	fmt.Println(p.Binary, p.Hex, p.Signed, p.Unsigned) // 10000000 80 -128 128
//
// # Results
//
// Convert wraps Encode and Project into a tagged Result that is either all
// projections or a failure, never a partial set:
//
//	r := bitconv.Convert(bitconv.Request{Value: "256", Bits: 8, InputType: bitconv.Unsigned})
//	if !r.OK() {
//	    fmt.Println(r.Err().Kind) // OutOfRange
//	}
//
// Result.Output renders the record a presentation layer consumes:
// {binaryText, hexText, signedText, unsignedText, bitPattern} on success and
// {errorKind, message} on failure.
//
// # Errors
//
// Failures carry a Kind (EmptyInput, InvalidFormat, OutOfRange,
// InvalidBitWidth, InvalidNotation) and match the corresponding sentinel:
//
//	if errors.Is(err, bitconv.ErrOutOfRange) { ... }
//
// # Converter
//
// Converter adds structured logging, metrics, an in-memory session history and
// bounded concurrent batch conversion on top of the pure functions:
//
//	c := bitconv.New(
//	    bitconv.WithLogger(bitconv.NewTextLogger(slog.LevelDebug)),
//	    bitconv.WithHistory(100),
//	    bitconv.WithMaxWorkers(4),
//	)
//	results, err := c.ConvertBatch(ctx, reqs)
//
// # Binary range check
//
// Binary input is range-checked by digit count, not magnitude: at 8 bits,
// "010000000" (nine digits) is rejected as OutOfRange even though its value is
// 128. Strip leading zeros before encoding if that is not wanted.
package bitconv
