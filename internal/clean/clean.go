// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean turns raw inventory rows into deduplicated, sorted
// Device batches. Unlike validate, the filter here is presence-only: a
// row needs a hostname and an IP to become a Device, but neither field
// is format-checked.
package clean

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/internal/normalize"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

// defaultStatus is assigned to devices whose source row has no status.
const defaultStatus = "active"

// Summary holds counts from one cleaning run.
type Summary struct {
	// Valid counts records that passed the presence filter, before
	// deduplication.
	Valid int

	// Skipped counts records dropped for a missing hostname or IP.
	Skipped int

	// Duplicates counts records dropped because an earlier record
	// normalized to the same hostname.
	Duplicates int
}

// Final returns the number of devices after deduplication.
func (s Summary) Final() int {
	return s.Valid - s.Duplicates
}

// Total returns the number of input records processed.
func (s Summary) Total() int {
	return s.Valid + s.Skipped
}

// Usable reports whether the record carries the two fields every
// Device needs: a non-blank hostname and IP, found via alias fallback.
func Usable(rec types.Record) bool {
	hostname := strings.TrimSpace(rec.Lookup(types.FieldHostname))
	ip := strings.TrimSpace(rec.Lookup(types.FieldIP))
	return hostname != "" && ip != ""
}

// FromRecord builds a Device from a raw record. The hostname is fully
// normalized (underscores and spaces to hyphens), the IP is kept as
// given, and type/location go through the fixed tables. It returns
// false when the record fails the presence filter.
func FromRecord(rec types.Record) (types.Device, bool) {
	if !Usable(rec) {
		return types.Device{}, false
	}

	status := strings.TrimSpace(rec.Lookup(types.FieldStatus))
	if status == "" {
		status = defaultStatus
	}

	return types.Device{
		Hostname:   normalize.Hostname(rec.Lookup(types.FieldHostname)),
		IPAddress:  strings.TrimSpace(rec.Lookup(types.FieldIP)),
		DeviceType: normalize.DeviceType(rec.Lookup(types.FieldType)),
		Location:   normalize.Location(rec.Lookup(types.FieldLocation)),
		Status:     status,
	}, true
}

// Devices runs the write pipeline over raw records: presence filter,
// Device build, first-occurrence-wins dedup by normalized hostname,
// then an ascending sort by hostname.
func Devices(records []types.Record) ([]types.Device, Summary) {
	var summary Summary
	var devices []types.Device

	for _, rec := range records {
		device, ok := FromRecord(rec)
		if !ok {
			summary.Skipped++
			continue
		}
		summary.Valid++
		devices = append(devices, device)
	}

	seen := make(map[string]struct{}, len(devices))
	unique := make([]types.Device, 0, len(devices))
	for _, d := range devices {
		if _, ok := seen[d.Hostname]; ok {
			summary.Duplicates++
			continue
		}
		seen[d.Hostname] = struct{}{}
		unique = append(unique, d)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Hostname < unique[j].Hostname
	})

	return unique, summary
}

// Files cleans one or more input CSVs into a single output batch,
// writing per-file progress and a final summary to w. Inputs are
// concatenated in argument order before deduplication, so the first
// file wins on hostname collisions across files.
func Files(paths []string, output string, delim csvio.Delimiter, w io.Writer) (Summary, error) {
	var all []types.Record

	for _, path := range paths {
		records, err := csvio.ReadRecords(path)
		if err != nil {
			return Summary{}, err
		}
		fmt.Fprintf(w, "read %s (%d rows)\n", filepath.Base(path), len(records))
		all = append(all, records...)
	}

	devices, summary := Devices(all)

	if err := csvio.WriteDevices(output, devices, delim); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nTransform summary: %d valid, %d skipped, %d duplicates removed (final: %d)\n",
		summary.Valid, summary.Skipped, summary.Duplicates, summary.Final())

	return summary, nil
}
