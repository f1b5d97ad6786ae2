// pkg/decode/progress.go
package decode

import (
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressBarCallback creates a progress callback that displays a batch-level
// progress bar. Returns the callback function and the progress container
// (call Wait() after the decode completes).
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var overallBar *mpb.Bar

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			// No bar for an empty batch - it would never complete.
			if event.Total == 0 {
				return
			}
			overallBar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Files", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
				),
			)

		case EventFileComplete:
			if overallBar != nil {
				overallBar.Increment()
			}
		}
	}

	return callback, progress
}
