package validate

import (
	"path/filepath"
	"testing"
)

func TestWriteAndReadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	outcomes := []Outcome{
		{Row: 2, Valid: true},
		{Row: 3, Valid: false, Errors: []string{"Missing hostname", "Missing IP address"}},
		{Row: 4, Valid: true},
		{Row: 5, Valid: false, Errors: []string{"Invalid IP address: '256.1.1.1'"}},
	}

	if err := WriteReport(path, "devices_messy.csv", outcomes); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	report, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}

	if report.SourceFile != "devices_messy.csv" {
		t.Errorf("SourceFile = %q", report.SourceFile)
	}
	if report.Summary.Total != 4 || report.Summary.Valid != 2 || report.Summary.Invalid != 2 {
		t.Errorf("Summary = %+v, want total 4, valid 2, invalid 2", report.Summary)
	}
	if report.Summary.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}

	if len(report.Errors) != 2 {
		t.Fatalf("got %d error groups, want 2", len(report.Errors))
	}
	if report.Errors[0].Row != 3 || len(report.Errors[0].Errors) != 2 {
		t.Errorf("Errors[0] = %+v", report.Errors[0])
	}
	if report.Errors[1].Errors[0] != "Invalid IP address: '256.1.1.1'" {
		t.Errorf("Errors[1] = %+v", report.Errors[1])
	}
}

func TestReadReportMissingFile(t *testing.T) {
	if _, err := ReadReport(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing report file")
	}
}
