// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split partitions inventory rows by device type and writes one
// CSV per type. Grouping keys on the raw device_type value, so "sw" and
// "switch" land in different files unless the input was cleaned first.
package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

// unknownType is the group for records without a device_type value.
const unknownType = "unknown"

// Columns is the column order for the per-type output files. Status is
// omitted; type splits describe raw inventory, not cleaned batches.
var Columns = []string{"hostname", "ip_address", "device_type", "location"}

// Groups partitions records by their raw device_type value, preserving
// input order within each group.
func Groups(records []types.Record) map[string][]types.Record {
	groups := make(map[string][]types.Record)
	for _, rec := range records {
		key := rec["device_type"]
		if key == "" {
			key = unknownType
		}
		groups[key] = append(groups[key], rec)
	}
	return groups
}

// Summary holds counts from one split run.
type Summary struct {
	Files   int
	Records int
}

// Files reads an inventory CSV and writes one file per device type into
// outputDir, named "<type>s.csv". Group files are written in sorted key
// order; progress goes to w.
func Files(path, outputDir string, delim csvio.Delimiter, w io.Writer) (Summary, error) {
	records, err := csvio.ReadRecords(path)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	groups := Groups(records)

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var summary Summary
	for _, key := range keys {
		group := groups[key]
		outPath := filepath.Join(outputDir, key+"s.csv")

		if err := csvio.WriteRecords(outPath, Columns, group, delim); err != nil {
			return summary, err
		}

		fmt.Fprintf(w, "wrote %s (%d devices)\n", filepath.Base(outPath), len(group))
		summary.Files++
		summary.Records += len(group)
	}

	fmt.Fprintf(w, "\nSplit summary: %d records across %d files\n", summary.Records, summary.Files)
	return summary, nil
}
