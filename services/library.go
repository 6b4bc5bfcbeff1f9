package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"tokusound/types"
)

// AuditProblem describes one catalog entry whose audio asset is broken
type AuditProblem struct {
	SoundID string `json:"soundId"`
	Path    string `json:"path"`
	Reason  string `json:"reason"`
}

// AuditResult summarizes a library audit run
type AuditResult struct {
	Checked    int            `json:"checked"`
	Missing    int            `json:"missing"`
	Unreadable int            `json:"unreadable"`
	Problems   []AuditProblem `json:"problems"`
}

// Clean reports whether every checked asset was present and readable
func (r *AuditResult) Clean() bool {
	return r.Missing == 0 && r.Unreadable == 0
}

// AuditLibrary cross-checks the catalog against the on-disk audio assets:
// every sound's path must resolve to a file under publicDir, and the file's
// embedded metadata must be parseable. Missing files count as missing,
// unparseable ones as unreadable. With showProgress a progress bar is
// rendered to stderr.
func AuditLibrary(catalog *types.Catalog, publicDir string, showProgress bool) *AuditResult {
	result := &AuditResult{Problems: []AuditProblem{}}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(catalog.Sounds)), "auditing")
	}

	for _, sound := range catalog.Sounds {
		if bar != nil {
			bar.Add(1)
		}
		result.Checked++

		if err := ValidateSoundPath(sound.Path); err != nil {
			result.Missing++
			result.Problems = append(result.Problems, AuditProblem{
				SoundID: sound.ID,
				Path:    sound.Path,
				Reason:  err.Error(),
			})
			continue
		}

		fullPath := filepath.Join(publicDir, strings.TrimPrefix(sound.Path, "/"))
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			result.Missing++
			result.Problems = append(result.Problems, AuditProblem{
				SoundID: sound.ID,
				Path:    sound.Path,
				Reason:  "audio file not found",
			})
			continue
		}

		if reason := probeAudioFile(fullPath); reason != "" {
			result.Unreadable++
			result.Problems = append(result.Problems, AuditProblem{
				SoundID: sound.ID,
				Path:    sound.Path,
				Reason:  reason,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"checked":    result.Checked,
		"missing":    result.Missing,
		"unreadable": result.Unreadable,
	}).Info("library audit finished")

	return result
}

// probeAudioFile opens the file and reads its embedded metadata. Returns a
// non-empty reason when the file cannot be read. Files without any tags are
// fine; only open/parse failures count.
func probeAudioFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("cannot open: %v", err)
	}
	defer file.Close()

	if _, err := tag.ReadFrom(file); err != nil && err != tag.ErrNoTagsFound {
		return fmt.Sprintf("cannot parse metadata: %v", err)
	}
	return ""
}

// ValidateSoundPath rejects catalog asset paths that could escape the
// public directory
func ValidateSoundPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	return nil
}
