// Package export writes finished drafts to text files and the clipboard.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/leadsmith/leadsmith/internal/batch"
	"github.com/leadsmith/leadsmith/internal/lead"
)

var ErrNothingToExport = errors.New("export: no messages to export")

// Entry is one exported draft.
type Entry struct {
	Name    string
	Message string
}

// FromResult collects the successful items of a batch run.
func FromResult(res *batch.Result) []Entry {
	if res == nil {
		return nil
	}
	items := res.Messages()
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		out = append(out, Entry{Name: it.Lead.DisplayName(), Message: it.Message})
	}
	return out
}

// Render formats entries as one record per lead under a
// "--- Message for NAME ---" header.
func Render(entries []Entry) string {
	records := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = lead.DefaultName
		}
		records = append(records, fmt.Sprintf("--- Message for %s ---\n\n%s\n\n", name, e.Message))
	}
	return strings.Join(records, "\n")
}

// Write renders entries to w.
func Write(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	_, err := io.WriteString(w, Render(entries))
	return err
}

// FileName is the default export name for a run on day t.
func FileName(t time.Time) string {
	return "batch-messages-" + t.Format("2006-01-02") + ".txt"
}

// Save writes entries to dir/FileName(now) and returns the path.
func Save(dir string, now time.Time, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNothingToExport
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, []byte(Render(entries)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// clipboardWrite is swapped in tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("export: clipboard is not supported on this system")
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// CopyAll puts every entry on the clipboard in the export format.
func CopyAll(entries []Entry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	return Copy(Render(entries))
}
