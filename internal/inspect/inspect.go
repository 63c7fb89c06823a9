// Package inspect summarizes inventory CSV files without modifying
// them: row counts, device type counts, and an optional listing of the
// devices at one location.
package inspect

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

// Summary holds aggregate counts from inspecting a set of files.
type Summary struct {
	Files   int
	Rows    int
	Matched int
	Failed  int
}

// Files reads each CSV and writes its row and device type counts to w.
// With location set, it also lists devices whose raw location field
// equals it. Unreadable files are reported and counted, not fatal.
func Files(paths []string, location string, w io.Writer) (Summary, error) {
	var summary Summary

	for _, path := range paths {
		records, err := csvio.ReadRecords(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(path), err)
			summary.Failed++
			continue
		}

		summary.Files++
		summary.Rows += len(records)

		fmt.Fprintf(w, "%s: %d devices\n", filepath.Base(path), len(records))

		counts := make(map[string]int)
		for _, rec := range records {
			counts[rec["device_type"]]++
		}
		for _, key := range sortedKeys(counts) {
			name := key
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(w, "  %s: %d\n", name, counts[key])
		}

		if location != "" {
			matches := filterByLocation(records, location)
			summary.Matched += len(matches)

			fmt.Fprintf(w, "  devices in %s:\n", location)
			if len(matches) == 0 {
				fmt.Fprintln(w, "    (none)")
			}
			for _, rec := range matches {
				fmt.Fprintf(w, "    - %s (%s)\n", rec.Lookup(types.FieldHostname), rec.Lookup(types.FieldIP))
			}
		}
	}

	fmt.Fprintf(w, "\nInspected %d file(s): %d rows", summary.Files, summary.Rows)
	if location != "" {
		fmt.Fprintf(w, ", %d at %s", summary.Matched, location)
	}
	if summary.Failed > 0 {
		fmt.Fprintf(w, ", %d failed", summary.Failed)
	}
	fmt.Fprintln(w)

	return summary, nil
}

// filterByLocation returns the records whose raw location field equals
// location exactly. No normalization is applied on either side.
func filterByLocation(records []types.Record, location string) []types.Record {
	var matches []types.Record
	for _, rec := range records {
		if rec["location"] == location {
			matches = append(matches, rec)
		}
	}
	return matches
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
