// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// ReportFile is the on-disk YAML representation of a validation run.
// It records the aggregate counts and the per-row errors so a run can
// be reviewed without re-validating the source.
type ReportFile struct {
	SourceFile string        `yaml:"source_file"`
	Summary    ReportSummary `yaml:"summary"`
	Errors     []RowErrors   `yaml:"errors,omitempty"`
}

// ReportSummary stores the run statistics and a timestamp.
type ReportSummary struct {
	Total     int       `yaml:"total"`
	Valid     int       `yaml:"valid"`
	Invalid   int       `yaml:"invalid"`
	Timestamp time.Time `yaml:"timestamp"`
}

// RowErrors groups the validation errors for one failed row.
type RowErrors struct {
	Row    int      `yaml:"row"`
	Errors []string `yaml:"errors"`
}

// WriteReport saves the outcomes of a validation run to a YAML file.
func WriteReport(path, sourceFile string, outcomes []Outcome) error {
	report := ReportFile{
		SourceFile: sourceFile,
		Summary: ReportSummary{
			Total:     len(outcomes),
			Timestamp: time.Now(),
		},
	}

	for _, out := range outcomes {
		if out.Valid {
			report.Summary.Valid++
			continue
		}
		report.Summary.Invalid++
		report.Errors = append(report.Errors, RowErrors{Row: out.Row, Errors: out.Errors})
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling validation report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written validation report from disk.
func ReadReport(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading validation report: %w", err)
	}
	var report ReportFile
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing validation report: %w", err)
	}
	return &report, nil
}
