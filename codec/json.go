package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Output records contain only strings and booleans, so the two JSON codecs
// produce interchangeable bytes; JSON exists for callers that want no extra
// dependency on the decode path.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
