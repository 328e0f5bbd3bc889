package logwriter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickchristie/drift"
)

// JSON writes record sequences as 2-space-indented JSON artifacts, the
// format consumed by downstream visualization tools.
type JSON struct {
	dir  string
	time drift.TimeProvider
}

// NewJSON creates a JSON writer that places artifacts in dir. An empty dir
// means the current working directory.
func NewJSON(dir string) *JSON {
	return &JSON{
		dir:  dir,
		time: drift.NewDefaultTimeProvider(),
	}
}

// WithTimeProvider replaces the time source used for filename timestamps.
// Returns the writer for chaining.
func (w *JSON) WithTimeProvider(tp drift.TimeProvider) *JSON {
	w.time = tp
	return w
}

// Write validates records against the artifact schema and writes them to
// logs_<label>_<timestamp>.json. Returns the path of the written artifact.
//
// Disk errors propagate unwrapped in meaning: there is no partial-write
// recovery, matching the experiment's write-once-at-end persistence model.
func (w *JSON) Write(label string, records []drift.Record) (string, error) {
	if records == nil {
		records = []drift.Record{}
	}
	if err := validateRecords(records); err != nil {
		return "", fmt.Errorf("write %s logs: %w", label, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s logs: %w", label, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("logs_%s_%s.json", label, w.time.Stamp()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s logs: %w", label, err)
	}
	return path, nil
}
