// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists cleaned devices in a queryable SQLite
// database with full-text search over hostnames, types, and locations.
// Syncs are incremental: a source file is re-read only when its
// modification time changes.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/inventory-engine/internal/clean"
	"github.com/pdiddy/inventory-engine/internal/csvio"
	"github.com/pdiddy/inventory-engine/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the device catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at
// DatabaseDir/catalog.db, creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DatabaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DatabaseDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS devices (
			hostname TEXT PRIMARY KEY,
			ip_address TEXT NOT NULL,
			device_type TEXT,
			location TEXT,
			status TEXT,
			source_file TEXT,
			synced_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_devices_type ON devices(device_type)`,
		`CREATE INDEX IF NOT EXISTS idx_devices_location ON devices(location)`,
		`CREATE INDEX IF NOT EXISTS idx_devices_source ON devices(source_file)`,
		`CREATE TABLE IF NOT EXISTS sync_status (
			file_path TEXT PRIMARY KEY,
			file_mod_time TEXT,
			device_count INTEGER
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='devices_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE devices_fts USING fts5(
				hostname, device_type, location,
				content=devices, content_rowid=rowid
			)`,
			`CREATE TRIGGER devices_ai AFTER INSERT ON devices BEGIN
				INSERT INTO devices_fts(rowid, hostname, device_type, location)
				VALUES (new.rowid, new.hostname, new.device_type, new.location);
			END`,
			`CREATE TRIGGER devices_ad AFTER DELETE ON devices BEGIN
				INSERT INTO devices_fts(devices_fts, rowid, hostname, device_type, location)
				VALUES('delete', old.rowid, old.hostname, old.device_type, old.location);
			END`,
			`CREATE TRIGGER devices_au AFTER UPDATE ON devices BEGIN
				INSERT INTO devices_fts(devices_fts, rowid, hostname, device_type, location)
				VALUES('delete', old.rowid, old.hostname, old.device_type, old.location);
				INSERT INTO devices_fts(rowid, hostname, device_type, location)
				VALUES (new.rowid, new.hostname, new.device_type, new.location);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// SyncSummary holds counts from a catalog sync run.
type SyncSummary struct {
	Synced  int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of files processed.
func (s SyncSummary) Total() int {
	return s.Synced + s.Updated + s.Skipped + s.Failed
}

// Sync ingests inventory CSVs into the catalog. A file whose
// modification time matches its previous sync is skipped; a changed
// file replaces its own devices transactionally. Rows pass through the
// same transform pipeline as clean, so syncing a raw export also
// works; a hostname seen in two files keeps the later file's entry.
func (s *Store) Sync(ctx context.Context, paths []string, w io.Writer) (SyncSummary, error) {
	var summary SyncSummary

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		base := filepath.Base(path)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", base, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM sync_status WHERE file_path = ?`, path,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", base)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		records, err := csvio.ReadRecords(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", base, err)
			summary.Failed++
			continue
		}
		devices, _ := clean.Devices(records)

		if err := s.syncFile(ctx, path, devices, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", base, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d devices)\n", base, len(devices))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "synced  %s (%d devices)\n", base, len(devices))
			summary.Synced++
		}
	}

	fmt.Fprintf(w, "\nsynced: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Synced, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) syncFile(ctx context.Context, path string, devices []types.Device, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Remove this file's previous devices before re-inserting them.
	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM devices WHERE source_file = ?`, path); err != nil {
			return fmt.Errorf("deleting previous devices: %w", err)
		}
	}

	// ON CONFLICT DO UPDATE rather than OR REPLACE: updates fire the
	// devices_au trigger, keeping the FTS index in step.
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO devices (hostname, ip_address, device_type, location, status, source_file, synced_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(hostname) DO UPDATE SET
			ip_address=excluded.ip_address, device_type=excluded.device_type,
			location=excluded.location, status=excluded.status,
			source_file=excluded.source_file, synced_at=excluded.synced_at`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	syncedAt := time.Now().UTC().Format(time.RFC3339)
	for _, d := range devices {
		if _, err := stmt.ExecContext(ctx,
			d.Hostname, d.IPAddress, d.DeviceType, d.Location, d.Status, path, syncedAt,
		); err != nil {
			return fmt.Errorf("inserting device %s: %w", d.Hostname, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sync_status (file_path, file_mod_time, device_count) VALUES (?, ?, ?)
		 ON CONFLICT(file_path) DO UPDATE SET
			file_mod_time=excluded.file_mod_time, device_count=excluded.device_count`,
		path, modTime, len(devices),
	); err != nil {
		return fmt.Errorf("updating sync status: %w", err)
	}

	return tx.Commit()
}
