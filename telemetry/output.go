package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/automoto/bushido-blazer/config"
	"github.com/gocarina/gocsv"
)

// OutputManager writes waves.csv and runs.csv into a directory.
type OutputManager struct {
	dir       string
	wavesFile *os.File
	runsFile  *os.File

	wavesHeaderWritten bool
	runsHeaderWritten  bool
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "waves.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating waves.csv: %w", err)
	}
	om.wavesFile = f

	f, err = os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		om.wavesFile.Close()
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	om.runsFile = f

	return om, nil
}

// WriteConfig saves the active tuning as YAML next to the CSVs.
func (om *OutputManager) WriteConfig() error {
	if om == nil {
		return nil
	}
	cfg := config.Current()
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWaves appends wave records to waves.csv.
func (om *OutputManager) WriteWaves(records []WaveRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	if err := writeRecords(om.wavesFile, records, &om.wavesHeaderWritten); err != nil {
		return fmt.Errorf("writing waves: %w", err)
	}
	return nil
}

// WriteRun appends one run record to runs.csv.
func (om *OutputManager) WriteRun(r RunRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.runsFile, []RunRecord{r}, &om.runsHeaderWritten); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	return nil
}

// writeRecords writes the header only on the first call for a file.
func writeRecords[T any](w io.Writer, records []T, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, w); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, w)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.wavesFile != nil {
		if err := om.wavesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.runsFile != nil {
		if err := om.runsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
