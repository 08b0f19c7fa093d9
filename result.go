package bitconv

// Request is the input record supplied by the enclosing application.
type Request struct {
	Value     string   `json:"value"`
	Bits      BitWidth `json:"bits"`
	InputType Notation `json:"inputType"`
}

// Result is the outcome of one conversion: either all projections or a
// failure, never both and never a partial set.
type Result struct {
	value EncodedValue
	proj  Projections
	err   *ConversionError
}

// Ok builds a successful Result from an encoded value.
func Ok(v EncodedValue) Result {
	return Result{value: v, proj: v.Project()}
}

// Fail builds a failed Result.
func Fail(err *ConversionError) Result {
	return Result{err: err}
}

// Convert encodes req and renders every projection. It is a pure function and
// safe for concurrent use.
func Convert(req Request) Result {
	v, err := Encode(req.Value, req.Bits, req.InputType)
	if err != nil {
		ce, ok := AsConversionError(err)
		if !ok {
			ce = newError(KindInvalidFormat, req.InputType, req.Bits, req.Value, "%s", err.Error())
		}
		return Fail(ce)
	}
	return Ok(v)
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.err == nil }

// Value returns the encoded value. ok is false for failed results.
func (r Result) Value() (EncodedValue, bool) {
	return r.value, r.err == nil
}

// Projections returns the rendered projections. ok is false for failed results.
func (r Result) Projections() (Projections, bool) {
	if r.err != nil {
		return Projections{}, false
	}
	return r.proj, true
}

// Err returns the failure, or nil on success.
func (r Result) Err() *ConversionError { return r.err }

// Error returns the failure as an error, or a nil interface on success.
func (r Result) Error() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Output is the record handed back to the presentation layer. Success and
// failure fields are mutually exclusive.
type Output struct {
	BinaryText   string `json:"binaryText,omitempty"`
	HexText      string `json:"hexText,omitempty"`
	SignedText   string `json:"signedText,omitempty"`
	UnsignedText string `json:"unsignedText,omitempty"`
	BitPattern   []bool `json:"bitPattern,omitempty"`

	ErrorKind string `json:"errorKind,omitempty"`
	Message   string `json:"message,omitempty"`
}

// OK reports whether o describes a successful conversion.
func (o Output) OK() bool { return o.ErrorKind == "" }

// Output renders r for the presentation layer.
func (r Result) Output() Output {
	if r.err != nil {
		return Output{
			ErrorKind: r.err.Kind.String(),
			Message:   r.err.Message,
		}
	}
	return Output{
		BinaryText:   r.proj.Binary,
		HexText:      r.proj.Hex,
		SignedText:   r.proj.Signed,
		UnsignedText: r.proj.Unsigned,
		BitPattern:   r.proj.BitPattern,
	}
}
