// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"strings"
	"testing"

	_ "github.com/lib/pq"

	"github.com/fieldworks-dev/canvass/models"
	"github.com/fieldworks-dev/canvass/testutil"
)

const sampleCSV = `Branch,Section,WD Destination,DMS ID,DMS Name
North,AH4001,WD01 x Ambur,D101,Sharma Kirana
North,AH4001,WD01 x Ambur,D102,Gupta Traders
South,AH4002,WD02 x Hosur,D200,Lakshmi Stores
,,missing key fields,,
South,AH4002,WD02 x Hosur,D201
`

func TestParseCSV(t *testing.T) {
	entries, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	// Header and the row with missing key fields are skipped; the short
	// row without a name is kept.
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Branch != "North" || first.Section != "AH4001" || first.DMSID != "D101" || first.DMSName != "Sharma Kirana" {
		t.Errorf("Unexpected first entry: %+v", first)
	}

	last := entries[3]
	if last.DMSID != "D201" || last.DMSName != "" {
		t.Errorf("Expected nameless entry, got %+v", last)
	}
}

func TestParseCSVTrimsWhitespace(t *testing.T) {
	entries, err := ParseCSV(strings.NewReader(
		"h1,h2,h3,h4,h5\n North , AH4001 , WD01 , D101 , Sharma \n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Branch != "North" || entries[0].DMSName != "Sharma" {
		t.Errorf("Fields not trimmed: %+v", entries[0])
	}
}

func TestReplace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Pre-existing batch that must disappear
	testutil.SeedRosterEntry(t, db, "Old", "OLD1", "WD99", "X1", "Stale Outlet")

	batch := []models.RosterEntry{
		{Branch: "North", Section: "AH4001", WDDestination: "WD01", DMSID: "D101", DMSName: "Sharma Kirana"},
		{Branch: "North", Section: "AH4001", WDDestination: "WD01", DMSID: "D102", DMSName: "Gupta Traders"},
		// Duplicate subject key within the batch: first occurrence wins
		{Branch: "North", Section: "AH4001", WDDestination: "WD01", DMSID: "D101", DMSName: "Duplicate"},
	}

	if err := Replace(db, batch); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM roster_entry`).Scan(&count); err != nil {
		t.Fatalf("Failed to count roster: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected full replacement with 2 entries, got %d", count)
	}

	var name string
	if err := db.QueryRow(`SELECT dms_name FROM roster_entry WHERE section = 'AH4001' AND dms_id = 'D101'`).Scan(&name); err != nil {
		t.Fatalf("Failed to read entry back: %v", err)
	}
	if name != "Sharma Kirana" {
		t.Errorf("First occurrence should win, got %q", name)
	}

	var staleCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM roster_entry WHERE section = 'OLD1'`).Scan(&staleCount); err != nil {
		t.Fatalf("Failed to count stale entries: %v", err)
	}
	if staleCount != 0 {
		t.Error("Previous batch survived the replacement")
	}
}
