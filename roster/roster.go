// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fieldworks-dev/canvass/models"
)

// Column order expected in a roster file, after the header row:
// branch, section, wd_destination, dms_id, dms_name.
const minColumns = 4

var ErrNoEntries = errors.New("roster file contains no usable rows")

// LoadFile reads a roster workbook (.xlsx) or CSV and replaces the entire
// roster with its contents. Returns the number of entries loaded.
func LoadFile(db *sql.DB, path string) (int, error) {
	var entries []models.RosterEntry
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		entries, err = ParseWorkbook(path)
	case ".csv":
		entries, err = parseCSVFile(path)
	default:
		return 0, fmt.Errorf("unsupported roster file type: %s", path)
	}
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, ErrNoEntries
	}

	if err := Replace(db, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ParseWorkbook reads roster entries from the first sheet of an xlsx
// file, skipping the header row and any row missing a key field.
func ParseWorkbook(path string) ([]models.RosterEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("roster workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read roster rows: %w", err)
	}

	entries := []models.RosterEntry{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if entry, ok := entryFromRow(row); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func parseCSVFile(path string) ([]models.RosterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster csv: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads roster entries from CSV data with the same column
// layout as the workbook format.
func ParseCSV(r io.Reader) ([]models.RosterEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	entries := []models.RosterEntry{}
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster csv: %w", err)
		}
		if first {
			first = false
			continue // header
		}
		if entry, ok := entryFromRow(row); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func entryFromRow(row []string) (models.RosterEntry, bool) {
	if len(row) < minColumns {
		return models.RosterEntry{}, false
	}
	entry := models.RosterEntry{
		Branch:        strings.TrimSpace(row[0]),
		Section:       strings.TrimSpace(row[1]),
		WDDestination: strings.TrimSpace(row[2]),
		DMSID:         strings.TrimSpace(row[3]),
	}
	if len(row) > 4 {
		entry.DMSName = strings.TrimSpace(row[4])
	}
	if entry.Branch == "" || entry.Section == "" || entry.WDDestination == "" || entry.DMSID == "" {
		return models.RosterEntry{}, false
	}
	return entry, true
}

// Replace swaps the whole roster for the given batch in one transaction.
// There is no incremental merge: re-ingestion fully replaces the roster.
// Duplicate (section, dms_id) rows within the batch are dropped, first
// occurrence wins.
func Replace(db *sql.DB, entries []models.RosterEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin roster replacement: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM roster_entry`); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO roster_entry (branch, section, wd_destination, dms_id, dms_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (section, dms_id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare roster insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.Exec(entry.Branch, entry.Section, entry.WDDestination, entry.DMSID, entry.DMSName); err != nil {
			return fmt.Errorf("failed to insert roster entry %s/%s: %w", entry.Section, entry.DMSID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster replacement: %w", err)
	}
	return nil
}
