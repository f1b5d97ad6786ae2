// pkg/decode/task.go
package decode

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeebo/blake3"
)

// Outcome is the terminal result of decoding one file. Exactly one Outcome is
// produced per dispatched file; Warning is empty on success and carries the
// user-visible reason otherwise.
type Outcome struct {
	// Path of the input file
	Path string

	// Records is the number of log records in the decompressed payload
	// (success only)
	Records int

	// Digest is the BLAKE3 hash of the decompressed payload (success only)
	Digest [32]byte

	// Warning is the reason decoding was skipped; empty on success
	Warning string
}

// Success reports whether the file was decoded and its output file written.
func (o Outcome) Success() bool {
	return o.Warning == ""
}

// DecodeFile decodes a single framed log file: it parses the header,
// decompresses the payload, writes the decompressed bytes to the sibling
// output path and counts the contained records. Every failure mode is
// contained here and terminates in a well-formed Outcome; nothing escapes to
// the caller.
func DecodeFile(path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Warning: fmt.Sprintf("Read failed: %v", err)}
	}

	header, offset, err := ParseHeader(data)
	if err != nil {
		return Outcome{Path: path, Warning: "Invalid JSON header"}
	}

	decoded, err := DecodePayload(header, data[offset:])
	if err != nil {
		var unsupported *UnsupportedCompressionError
		if errors.As(err, &unsupported) {
			return Outcome{Path: path, Warning: "Unsupported compression type: " + unsupported.Value}
		}
		return Outcome{Path: path, Warning: "Snappy decompression failed"}
	}

	if err := writeOutput(OutputPath(path), decoded); err != nil {
		return Outcome{Path: path, Warning: fmt.Sprintf("Write failed: %v", err)}
	}

	return Outcome{
		Path:    path,
		Records: CountRecords(decoded),
		Digest:  blake3.Sum256(decoded),
	}
}
