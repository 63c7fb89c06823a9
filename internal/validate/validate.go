// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks inventory rows against hostname and IPv4
// format rules and builds cleaned records from the rows that pass.
// Validation errors accumulate per row; they never abort a run.
package validate

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/internal/normalize"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

// hostnamePattern accepts a single alphanumeric character, or a string
// that starts and ends alphanumeric with only alphanumerics and hyphens
// between.
var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// ipv4Pattern accepts four dot-separated groups of 1-3 digits. Octet
// range is checked separately.
var ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// Hostname reports whether s is a valid hostname after trimming: only
// letters, digits, and hyphens, starting and ending with an
// alphanumeric character. The empty string is invalid, not an error.
func Hostname(s string) bool {
	return hostnamePattern.MatchString(strings.TrimSpace(s))
}

// IPv4 reports whether s is a dotted-quad IPv4 address after trimming,
// with every octet in [0,255]. Leading zeros are accepted; no
// canonicalization happens.
func IPv4(s string) bool {
	s = strings.TrimSpace(s)
	if !ipv4Pattern.MatchString(s) {
		return false
	}
	for _, octet := range strings.Split(s, ".") {
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// CleanedColumns is the column order for cleaned-row CSV output. The
// cleaned form of a validated row carries no status field.
var CleanedColumns = []string{"hostname", "ip_address", "device_type", "location"}

// Outcome is the result of validating one CSV row.
type Outcome struct {
	// Row is the absolute CSV row number. The header is row 1, so data
	// rows start at 2, matching spreadsheet line numbering.
	Row int

	// Valid reports whether the row passed every check.
	Valid bool

	// Errors lists the row's validation failures in check order.
	Errors []string

	// Cleaned is the normalized record for a valid row, nil otherwise.
	Cleaned types.Record
}

// Row validates a single record and, when it passes, builds its cleaned
// form: hostname lower-cased with underscores replaced by hyphens, IP
// kept as given, device type and location normalized through the fixed
// tables.
func Row(rowNum int, rec types.Record) Outcome {
	var errs []string

	hostname := strings.TrimSpace(rec.Lookup(types.FieldHostname))
	ip := strings.TrimSpace(rec.Lookup(types.FieldIP))
	deviceType := strings.TrimSpace(rec.Lookup(types.FieldType))
	location := strings.TrimSpace(rec.Lookup(types.FieldLocation))

	if hostname == "" {
		errs = append(errs, "Missing hostname")
	} else if !Hostname(hostname) {
		errs = append(errs, fmt.Sprintf("Invalid hostname format: '%s'", hostname))
	}

	if ip == "" {
		errs = append(errs, "Missing IP address")
	} else if !IPv4(ip) {
		errs = append(errs, fmt.Sprintf("Invalid IP address: '%s'", ip))
	}

	if deviceType == "" {
		errs = append(errs, "Missing device type")
	}
	if location == "" {
		errs = append(errs, "Missing location")
	}

	out := Outcome{Row: rowNum, Valid: len(errs) == 0, Errors: errs}
	if out.Valid {
		out.Cleaned = types.Record{
			"hostname":    normalize.CleanHostname(hostname),
			"ip_address":  ip,
			"device_type": normalize.DeviceType(deviceType),
			"location":    normalize.Location(location),
		}
	}
	return out
}

// Summary holds counts from validating one file.
type Summary struct {
	Rows    int
	Valid   int
	Invalid int
}

// File validates every row of a CSV file, writing per-row status to w.
// It returns the cleaned records for the valid rows plus the full
// outcome list. Only I/O failures produce an error; rows that fail
// validation are reported in the outcomes.
func File(path string, w io.Writer) ([]types.Record, []Outcome, error) {
	records, err := csvio.ReadRecords(path)
	if err != nil {
		return nil, nil, err
	}

	var cleaned []types.Record
	outcomes := make([]Outcome, 0, len(records))
	var summary Summary

	for i, rec := range records {
		out := Row(i+2, rec)
		outcomes = append(outcomes, out)
		summary.Rows++

		if out.Valid {
			summary.Valid++
			cleaned = append(cleaned, out.Cleaned)
			fmt.Fprintf(w, "valid:   row %d (%s)\n", out.Row, out.Cleaned["hostname"])
		} else {
			summary.Invalid++
			fmt.Fprintf(w, "invalid: row %d (%s)\n", out.Row, strings.Join(out.Errors, "; "))
		}
	}

	fmt.Fprintf(w, "\nValidation summary: %d valid, %d invalid (total: %d)\n",
		summary.Valid, summary.Invalid, summary.Rows)

	return cleaned, outcomes, nil
}
