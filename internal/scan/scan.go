// internal/scan/scan.go
package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	ignore "github.com/sabhiram/go-gitignore"
)

// logFileExt is the extension candidate log files carry.
const logFileExt = ".json"

// LogFiles walks root and returns every file whose name is a canonical UUID
// with a .json extension. Exclude patterns use gitignore syntax and are
// matched against paths relative to root. Inaccessible paths are skipped
// rather than failing the walk.
func LogFiles(root string, exclude []string) ([]string, error) {
	var matcher *ignore.GitIgnore
	if len(exclude) > 0 {
		matcher = ignore.CompileIgnoreLines(exclude...)
	}

	var matches []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip inaccessible paths
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if info.IsDir() {
			if matcher != nil && rel != "." && matcher.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}

		if IsLogFileName(info.Name()) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

// IsLogFileName reports whether name is a lowercase UUID (8-4-4-4-12 hex
// groups) followed by the .json extension. Decoder output files never match:
// their stem carries the _uncompress suffix.
func IsLogFileName(name string) bool {
	if !strings.HasSuffix(name, logFileExt) {
		return false
	}
	stem := strings.TrimSuffix(name, logFileExt)
	if len(stem) != 36 || stem != strings.ToLower(stem) {
		return false
	}
	_, err := uuid.Parse(stem)
	return err == nil
}
