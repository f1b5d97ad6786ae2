// pkg/decode/payload.go
package decode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/snappy"
)

// OutputSuffix is inserted before the extension of an input file to name its
// decompressed sibling (abc.json -> abc_uncompress.json).
const OutputSuffix = "_uncompress"

// DecodePayload decompresses the payload bytes according to the header.
// A declared scheme other than "snappy" yields an UnsupportedCompressionError;
// a corrupt or truncated Snappy stream yields ErrDecompressFailed.
func DecodePayload(header Header, payload []byte) ([]byte, error) {
	if header.Compression != CompressionSnappy {
		return nil, &UnsupportedCompressionError{Value: header.Compression}
	}

	decoded, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, ErrDecompressFailed
	}
	return decoded, nil
}

// CountRecords returns the number of newline-delimited records in a
// decompressed payload. Records are non-empty lines; a trailing newline does
// not add a record. Downstream consumers depend on this exact counting rule.
func CountRecords(data []byte) int {
	count := 0
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) > 0 {
			count++
		}
	}
	return count
}

// OutputPath returns the sibling path the decompressed payload is written to:
// the input path with OutputSuffix inserted before its extension.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + OutputSuffix + ext
}

// writeOutput writes the decompressed bytes to outPath, replacing any previous
// file. The write goes through a temp file in the same directory followed by a
// rename, so a failed write never leaves a partial output file visible.
func writeOutput(outPath string, data []byte) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
