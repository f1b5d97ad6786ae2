// pkg/decode/errors.go
package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrInputRequired is returned when neither an input file nor an input directory is specified
	ErrInputRequired = errors.New("an input file or input directory is required")

	// ErrInputConflict is returned when both an input file and an input directory are specified
	ErrInputConflict = errors.New("specify either an input file or an input directory, not both")

	// ErrHeaderInvalid is returned when the first line of a file is not a JSON
	// object with a "compression" string field
	ErrHeaderInvalid = errors.New("invalid JSON header")

	// ErrDecompressFailed is returned when the payload is not a valid Snappy stream
	ErrDecompressFailed = errors.New("snappy decompression failed")
)

// UnsupportedCompressionError is returned when the header declares a
// compression scheme other than "snappy". Value carries the declared scheme
// so it can be surfaced in the warning message.
type UnsupportedCompressionError struct {
	Value string
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("unsupported compression type: %s", e.Value)
}
