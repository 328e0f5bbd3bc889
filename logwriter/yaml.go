package logwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickchristie/drift"
	"gopkg.in/yaml.v3"
)

// YAML writes record sequences as YAML artifacts. Same content and same
// schema validation as [JSON]; use it when the logs are read by humans
// rather than tools.
type YAML struct {
	dir  string
	time drift.TimeProvider
}

// NewYAML creates a YAML writer that places artifacts in dir. An empty dir
// means the current working directory.
func NewYAML(dir string) *YAML {
	return &YAML{
		dir:  dir,
		time: drift.NewDefaultTimeProvider(),
	}
}

// WithTimeProvider replaces the time source used for filename timestamps.
// Returns the writer for chaining.
func (w *YAML) WithTimeProvider(tp drift.TimeProvider) *YAML {
	w.time = tp
	return w
}

// Write validates records against the artifact schema and writes them to
// logs_<label>_<timestamp>.yaml. Returns the path of the written artifact.
func (w *YAML) Write(label string, records []drift.Record) (string, error) {
	if records == nil {
		records = []drift.Record{}
	}
	if err := validateRecords(records); err != nil {
		return "", fmt.Errorf("write %s logs: %w", label, err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal %s logs: %w", label, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("logs_%s_%s.yaml", label, w.time.Stamp()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s logs: %w", label, err)
	}
	return path, nil
}
