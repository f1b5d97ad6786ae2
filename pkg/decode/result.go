// pkg/decode/result.go
package decode

import (
	"fmt"
	"log/slog"
	"sync"
)

// Result contains statistics about a decode batch
type Result struct {
	// FilesMatched is the number of candidate files discovered
	FilesMatched int

	// FilesDecoded is the number of files decoded with an output file written
	FilesDecoded int

	// TotalRecords is the sum of record counts over all decoded files
	TotalRecords int

	// Warnings holds the outcome of every file that was skipped (non-fatal)
	Warnings []Outcome
}

// Success returns true if every matched file was decoded
func (r *Result) Success() bool {
	return len(r.Warnings) == 0 && r.FilesDecoded == r.FilesMatched
}

// aggregator is the single synchronized collector of Outcomes. Workers never
// touch the shared counters directly; they hand each Outcome to Record, which
// folds it into the Result and emits the matching log event.
type aggregator struct {
	mu      sync.Mutex
	result  *Result
	logger  *slog.Logger
	verbose bool
}

func newAggregator(result *Result, logger *slog.Logger, verbose bool) *aggregator {
	return &aggregator{
		result:  result,
		logger:  logger,
		verbose: verbose,
	}
}

// Record folds one Outcome into the batch totals.
func (a *aggregator) Record(workerID int, outcome Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !outcome.Success() {
		a.result.Warnings = append(a.result.Warnings, outcome)
		a.logger.Warn(outcome.Warning,
			slog.String("file", outcome.Path),
			slog.Int("worker", workerID),
		)
		return
	}

	a.result.FilesDecoded++
	a.result.TotalRecords += outcome.Records
	if a.verbose {
		a.logger.Info("Decompressed successfully",
			slog.String("file", outcome.Path),
			slog.Int("entries", outcome.Records),
			slog.Int("worker", workerID),
			slog.String("digest", fmt.Sprintf("%x", outcome.Digest[:8])),
		)
	}
}

// Summarize emits the final batch summary. Callers must not invoke it before
// every dispatched file has been recorded.
func (a *aggregator) Summarize() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.logger.Info(fmt.Sprintf("Total log entries across all files: %d", a.result.TotalRecords),
		slog.Int("filesMatched", a.result.FilesMatched),
		slog.Int("filesDecoded", a.result.FilesDecoded),
		slog.Int("warnings", len(a.result.Warnings)),
	)
}
