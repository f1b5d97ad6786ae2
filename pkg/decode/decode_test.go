// pkg/decode/decode_test.go
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildBatchDir creates a directory with a mix of decodable and broken files.
// Returns the directory and the expected total record count.
func buildBatchDir(t *testing.T) (string, int) {
	t.Helper()
	dir := t.TempDir()
	totalRecords := 0

	// Decodable files with 1..8 records each
	for i := 1; i <= 8; i++ {
		var payload bytes.Buffer
		for j := 0; j < i; j++ {
			fmt.Fprintf(&payload, "{\"file\":%d,\"line\":%d}\n", i, j)
		}
		path := filepath.Join(dir, uuid.NewString()+".json")
		writeLogFile(t, path, "{\"compression\":\"snappy\"}", payload.Bytes())
		totalRecords += i
	}

	// Bad header
	badHeader := filepath.Join(dir, uuid.NewString()+".json")
	if err := os.WriteFile(badHeader, []byte("not json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Unsupported compression
	gzipFile := filepath.Join(dir, uuid.NewString()+".json")
	writeLogFile(t, gzipFile, "{\"compression\":\"gzip\"}", []byte("x\n"))

	// Corrupt payload
	corrupt := filepath.Join(dir, uuid.NewString()+".json")
	content := append([]byte("{\"compression\":\"snappy\"}\n"), 0xff, 0xff, 0xff, 0xff)
	if err := os.WriteFile(corrupt, content, 0644); err != nil {
		t.Fatal(err)
	}

	// Nested decodable file
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(sub, uuid.NewString()+".json")
	writeLogFile(t, nested, "{\"compression\":\"snappy\"}", []byte("{\"n\":1}\n{\"n\":2}\n"))
	totalRecords += 2

	// Non-candidate files must be ignored entirely
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	return dir, totalRecords
}

func TestDecodeBatch(t *testing.T) {
	dir, totalRecords := buildBatchDir(t)

	result, err := Decode(&Options{
		InputDir: dir,
		Workers:  4,
		Logger:   discardLogger(),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.FilesMatched != 12 {
		t.Errorf("Expected 12 matched files, got %d", result.FilesMatched)
	}
	if result.FilesDecoded != 9 {
		t.Errorf("Expected 9 decoded files, got %d", result.FilesDecoded)
	}
	if result.TotalRecords != totalRecords {
		t.Errorf("Expected %d total records, got %d", totalRecords, result.TotalRecords)
	}
	if len(result.Warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d", len(result.Warnings))
	}
	// No outcome may be dropped
	if result.FilesDecoded+len(result.Warnings) != result.FilesMatched {
		t.Error("Every matched file must produce exactly one outcome")
	}
}

func TestDecodePoolSizeInvariance(t *testing.T) {
	dir, totalRecords := buildBatchDir(t)

	for _, workers := range []int{1, 4, 16} {
		result, err := Decode(&Options{
			InputDir: dir,
			Workers:  workers,
			Logger:   discardLogger(),
		}, nil)
		if err != nil {
			t.Fatal(err)
		}

		if result.TotalRecords != totalRecords {
			t.Errorf("Workers=%d: expected %d total records, got %d", workers, totalRecords, result.TotalRecords)
		}
		if result.FilesDecoded != 9 || len(result.Warnings) != 3 {
			t.Errorf("Workers=%d: outcome classification changed: %d decoded, %d warnings",
				workers, result.FilesDecoded, len(result.Warnings))
		}
	}
}

func TestDecodeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.json")
	writeLogFile(t, path, "{\"compression\":\"snappy\"}", []byte("{\"a\":1}\n{\"b\":2}\n{\"c\":3}\n"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	result, err := Decode(&Options{
		InputPath: path,
		Logger:    logger,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.FilesMatched != 1 || result.FilesDecoded != 1 {
		t.Errorf("Expected 1/1 files, got %d/%d", result.FilesDecoded, result.FilesMatched)
	}
	if result.TotalRecords != 3 {
		t.Errorf("Expected 3 records, got %d", result.TotalRecords)
	}
	if !strings.Contains(buf.String(), "Total log entries across all files: 3") {
		t.Errorf("Summary event missing, log output:\n%s", buf.String())
	}
}

func TestDecodeEmitsProgressEvents(t *testing.T) {
	dir, _ := buildBatchDir(t)

	var mu sync.Mutex
	completed := 0
	sawStart := false
	sawComplete := false

	_, err := Decode(&Options{
		InputDir: dir,
		Workers:  4,
		Logger:   discardLogger(),
	}, func(event ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		switch event.Type {
		case EventStart:
			sawStart = true
		case EventFileComplete:
			completed++
		case EventComplete:
			sawComplete = true
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	if !sawStart || !sawComplete {
		t.Error("Expected start and complete events")
	}
	if completed != 12 {
		t.Errorf("Expected 12 file-complete events, got %d", completed)
	}
}

func TestDecodeFatalErrors(t *testing.T) {
	logger := discardLogger()

	if _, err := Decode(&Options{Logger: logger}, nil); !errors.Is(err, ErrInputRequired) {
		t.Errorf("Expected ErrInputRequired, got %v", err)
	}

	if _, err := Decode(&Options{InputPath: "a", InputDir: "b", Logger: logger}, nil); !errors.Is(err, ErrInputConflict) {
		t.Errorf("Expected ErrInputConflict, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := Decode(&Options{InputPath: missing, Logger: logger}, nil); err == nil {
		t.Error("Expected an error for a missing input file")
	}
	if _, err := Decode(&Options{InputDir: missing, Logger: logger}, nil); err == nil {
		t.Error("Expected an error for a missing input directory")
	}
}

func TestDecodeVerboseLogsPerFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, uuid.NewString()+".json")
	writeLogFile(t, path, "{\"compression\":\"snappy\"}", []byte("{\"a\":1}\n"))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := Decode(&Options{
		InputDir: dir,
		Verbose:  true,
		Logger:   logger,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Decompressed successfully") {
		t.Errorf("Expected a per-file event in verbose mode, got:\n%s", out)
	}
	if !strings.Contains(out, "worker=") {
		t.Errorf("Per-file event should name the worker, got:\n%s", out)
	}
}
