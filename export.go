package walktrace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultExportName is the file name the trajectory is exported under.
const DefaultExportName = "walk_trace.csv"

// Exporter consumes a finished session. The recorder invokes it
// synchronously on the Recording → Idle transition.
type Exporter interface {
	Export(Session) error
}

// CSVExporter writes the sample sequence as a CSV file. An empty
// session produces no file and no error.
type CSVExporter struct {
	// Path of the output file. Empty means DefaultExportName in the
	// working directory.
	Path string
}

// Export writes the session's samples to the configured path.
func (e *CSVExporter) Export(s Session) error {
	if len(s.Samples) == 0 {
		Logger().Warn("export skipped, no samples", "session", s.ID)
		return nil
	}

	path := e.Path
	if path == "" {
		path = DefaultExportName
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("walktrace: create export file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := WriteCSV(f, s.Samples); err != nil {
		return fmt.Errorf("walktrace: write export: %w", err)
	}
	Logger().Info("trajectory exported",
		"session", s.ID, "path", path, "samples", len(s.Samples))
	return nil
}

// WriteCSV writes the CSV payload for a sample sequence: a `time,x,y`
// header followed by one row per sample in recorded order. Times are
// whole milliseconds; coordinates use fixed two-decimal formatting,
// matching the rounding applied when the samples were produced.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "x", "y"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatInt(s.Time, 10),
			strconv.FormatFloat(s.X, 'f', 2, 64),
			strconv.FormatFloat(s.Y, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
