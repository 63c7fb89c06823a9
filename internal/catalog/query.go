// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/inventory-engine/pkg/types"
)

// QueryOptions holds filters for catalog queries. Zero-valued fields
// are ignored; an empty options set lists the whole catalog up to the
// result limit.
type QueryOptions struct {
	// Search is an FTS5 MATCH expression over hostname, device type,
	// and location.
	Search string

	// Type filters by canonical device type.
	Type string

	// Location filters by canonical location.
	Location string

	// MaxResults caps the result count. Zero uses the store default.
	MaxResults int
}

// Entry is one catalog row: a device plus its sync provenance.
type Entry struct {
	types.Device `yaml:",inline"`

	// SourceFile is the CSV the device was last synced from.
	SourceFile string `json:"source_file" yaml:"source_file"`

	// SyncedAt is the RFC 3339 time of that sync.
	SyncedAt string `json:"synced_at" yaml:"synced_at"`
}

// Query returns catalog entries matching opts, ordered by hostname so
// results are stable across runs.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)

	if opts.Search != "" {
		qb.WriteString(
			`SELECT d.hostname, d.ip_address, d.device_type, d.location, d.status,
				d.source_file, d.synced_at
			FROM devices_fts
			JOIN devices d ON d.rowid = devices_fts.rowid
			WHERE devices_fts MATCH ?`)
		args = append(args, opts.Search)
	} else {
		qb.WriteString(
			`SELECT d.hostname, d.ip_address, d.device_type, d.location, d.status,
				d.source_file, d.synced_at
			FROM devices d
			WHERE 1=1`)
	}

	if opts.Type != "" {
		qb.WriteString(` AND d.device_type = ?`)
		args = append(args, opts.Type)
	}
	if opts.Location != "" {
		qb.WriteString(` AND d.location = ?`)
		args = append(args, opts.Location)
	}

	qb.WriteString(` ORDER BY d.hostname LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			deviceType sql.NullString
			location   sql.NullString
			status     sql.NullString
			sourceFile sql.NullString
			syncedAt   sql.NullString
		)
		if err := rows.Scan(&e.Hostname, &e.IPAddress, &deviceType, &location,
			&status, &sourceFile, &syncedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.DeviceType = deviceType.String
		e.Location = location.String
		e.Status = status.String
		e.SourceFile = sourceFile.String
		e.SyncedAt = syncedAt.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of devices in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM devices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting devices: %w", err)
	}
	return n, nil
}

// FormatTable writes entries as an aligned text table to w.
func FormatTable(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No devices found.")
		return
	}

	fmt.Fprintf(w, "%-24s  %-15s  %-10s  %-16s  %-8s\n",
		"Hostname", "IP Address", "Type", "Location", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, e := range entries {
		fmt.Fprintf(w, "%-24s  %-15s  %-10s  %-16s  %-8s\n",
			truncate(e.Hostname, 24), e.IPAddress, truncate(e.DeviceType, 10),
			truncate(e.Location, 16), e.Status)
	}

	fmt.Fprintf(w, "\n%d device(s)\n", len(entries))
}

// FormatJSON writes entries as indented JSON to w.
func FormatJSON(entries []Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
