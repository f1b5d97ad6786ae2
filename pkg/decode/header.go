// pkg/decode/header.go
package decode

import (
	"bytes"
	"encoding/json"
)

// CompressionSnappy is the only payload compression scheme the decoder accepts.
const CompressionSnappy = "snappy"

// Header is the parsed first line of a framed log file: a JSON object
// declaring the compression scheme of the payload that follows.
type Header struct {
	Compression string `json:"compression"`
}

// ParseHeader splits off the first newline-terminated line of data and parses
// it as a JSON header. It returns the header and the byte offset where the
// payload begins. A first line that is not a JSON object, or whose
// "compression" field is missing or not a string, yields ErrHeaderInvalid.
func ParseHeader(data []byte) (Header, int, error) {
	line := data
	offset := len(data)
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
		offset = i + 1
	}

	// Decode into a raw map first: rejects arrays, numbers and other
	// non-object JSON before the field check.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return Header{}, 0, ErrHeaderInvalid
	}

	raw, ok := fields["compression"]
	if !ok {
		return Header{}, 0, ErrHeaderInvalid
	}

	var compression *string
	if err := json.Unmarshal(raw, &compression); err != nil || compression == nil {
		return Header{}, 0, ErrHeaderInvalid
	}

	return Header{Compression: *compression}, offset, nil
}
