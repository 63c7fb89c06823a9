// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders summary statistics for inventory files as a
// fixed-width text report.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

// now is stubbed in tests to pin the generation timestamp.
var now = time.Now

const (
	bannerWidth   = 50
	timestampFmt  = "2006-01-02 15:04:05"
	reportCaption = "NETWORK INVENTORY SUMMARY REPORT"
)

// Stats holds aggregate counts for a set of inventory records. Counts
// key on the raw field values; no normalization is applied.
type Stats struct {
	Total      int
	ByType     map[string]int
	ByLocation map[string]int
}

// Collect computes the total plus per-type and per-location counts.
func Collect(records []types.Record) Stats {
	stats := Stats{
		ByType:     make(map[string]int),
		ByLocation: make(map[string]int),
	}
	for _, rec := range records {
		stats.Total++
		stats.ByType[rec["device_type"]]++
		stats.ByLocation[rec["location"]]++
	}
	return stats
}

// Render writes the summary report to w. Group listings appear in
// sorted key order so the output is deterministic.
func Render(w io.Writer, stats Stats, sourceName string) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, reportCaption)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Generated: %s\n", now().Format(timestampFmt))
	fmt.Fprintf(w, "Source file: %s\n", sourceName)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Devices: %d\n", stats.Total)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "By Device Type:")
	for _, key := range sortedKeys(stats.ByType) {
		fmt.Fprintf(w, "  - %s: %d\n", key, stats.ByType[key])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "By Location:")
	for _, key := range sortedKeys(stats.ByLocation) {
		fmt.Fprintf(w, "  - %s: %d\n", key, stats.ByLocation[key])
	}
}

// File reads an inventory CSV and writes its report to outputPath, or
// to w when outputPath is empty.
func File(path, outputPath string, w io.Writer) error {
	records, err := csvio.ReadRecords(path)
	if err != nil {
		return err
	}

	stats := Collect(records)

	if outputPath == "" {
		Render(w, stats, filepath.Base(path))
		return nil
	}

	var buf strings.Builder
	Render(&buf, stats, filepath.Base(path))
	if err := os.WriteFile(outputPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Fprintf(w, "Report written to %s\n", outputPath)
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
