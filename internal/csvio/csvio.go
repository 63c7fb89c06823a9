// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvio reads and writes device inventory CSV files. Input
// follows RFC 4180 with a header row naming the columns; output uses a
// fixed column order with a configurable field separator.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/inventory-engine/pkg/types"
)

// Delimiter names an output field separator.
type Delimiter string

const (
	DelimiterComma Delimiter = "comma"
	DelimiterTab   Delimiter = "tab"
	DelimiterPipe  Delimiter = "pipe"
)

// Rune returns the separator character for the delimiter. The empty
// delimiter means comma.
func (d Delimiter) Rune() (rune, error) {
	switch d {
	case DelimiterComma, "":
		return ',', nil
	case DelimiterTab:
		return '\t', nil
	case DelimiterPipe:
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter %q: use comma, tab, or pipe", string(d))
	}
}

// DeviceColumns is the canonical column order for cleaned inventory files.
var DeviceColumns = []string{"hostname", "ip_address", "device_type", "location", "status"}

// ReadRecords reads a CSV file with a header row into Records. Rows may
// be shorter or longer than the header: missing trailing cells are left
// absent from the record, extra cells are dropped. An empty file yields
// no records.
func ReadRecords(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	var records []types.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		rec := make(types.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// WriteRecords writes records to path under the given header order.
// Fields absent from a record are written as empty cells.
func WriteRecords(path string, header []string, records []types.Record, delim Delimiter) error {
	sep, err := delim.Rune()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sep

	if err := w.Write(header); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range records {
		for i, name := range header {
			row[i] = rec[name]
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("encoding row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteDevices writes devices to path in the canonical five-column order.
func WriteDevices(path string, devices []types.Device, delim Delimiter) error {
	records := make([]types.Record, len(devices))
	for i, d := range devices {
		records[i] = d.Record()
	}
	return WriteRecords(path, DeviceColumns, records, delim)
}
