// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	_ "github.com/lib/pq"

	"github.com/fieldworks-dev/canvass/models"
	"github.com/fieldworks-dev/canvass/testutil"
)

func seedRoster(t *testing.T, h *HierarchyHandler) {
	t.Helper()
	// Seeded out of order on purpose: the lookups must sort.
	testutil.SeedRosterEntry(t, h.db, "South", "AH4002", "WD02 x Hosur", "D200", "Lakshmi Stores")
	testutil.SeedRosterEntry(t, h.db, "North", "AH4001", "WD01 x Ambur", "D101", "Sharma Kirana")
	testutil.SeedRosterEntry(t, h.db, "North", "AH4001", "WD01 x Ambur", "D102", "Gupta Traders")
	testutil.SeedRosterEntry(t, h.db, "North", "AH4003", "WD03 x Vellore", "D301", "Anand Mart")
}

func TestListBranches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	handler := NewHierarchyHandler(db, testutil.GetTestConfig())
	seedRoster(t, handler)

	req := httptest.NewRequest("GET", "/api/branches", nil)
	w := httptest.NewRecorder()
	handler.ListBranches(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.BranchesResponse
	testutil.AssertJSON(t, w, &resp)

	// Distinct and sorted ascending, duplicates collapsed
	want := []string{"North", "South"}
	if !reflect.DeepEqual(resp.Branches, want) {
		t.Errorf("Expected branches %v, got %v", want, resp.Branches)
	}
}

func TestListSections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	handler := NewHierarchyHandler(db, testutil.GetTestConfig())
	seedRoster(t, handler)

	tests := []struct {
		name   string
		branch string
		want   []string
	}{
		{name: "branch with two sections", branch: "North", want: []string{"AH4001", "AH4003"}},
		{name: "branch with one section", branch: "South", want: []string{"AH4002"}},
		{name: "unknown branch is empty, not an error", branch: "East", want: []string{}},
		{name: "matching is case-sensitive", branch: "north", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/sections/"+tt.branch, nil)
			req.SetPathValue("branch", tt.branch)
			w := httptest.NewRecorder()
			handler.ListSections(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.SectionsResponse
			testutil.AssertJSON(t, w, &resp)
			if !reflect.DeepEqual(resp.Sections, tt.want) {
				t.Errorf("Expected sections %v, got %v", tt.want, resp.Sections)
			}
		})
	}
}

func TestListWDDestinations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	handler := NewHierarchyHandler(db, testutil.GetTestConfig())
	seedRoster(t, handler)

	req := httptest.NewRequest("GET", "/api/wd-destinations/AH4001", nil)
	req.SetPathValue("section", "AH4001")
	w := httptest.NewRecorder()
	handler.ListWDDestinations(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.WDDestinationsResponse
	testutil.AssertJSON(t, w, &resp)

	// Two roster entries share the destination; it appears once.
	want := []string{"WD01 x Ambur"}
	if !reflect.DeepEqual(resp.WDDestinations, want) {
		t.Errorf("Expected destinations %v, got %v", want, resp.WDDestinations)
	}
}

func TestListSubjects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	handler := NewHierarchyHandler(db, testutil.GetTestConfig())
	seedRoster(t, handler)

	req := httptest.NewRequest("GET", "/api/dms-ids/AH4001/WD01%20x%20Ambur", nil)
	req.SetPathValue("section", "AH4001")
	req.SetPathValue("destination", "WD01 x Ambur")
	w := httptest.NewRecorder()
	handler.ListSubjects(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SubjectsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.DMSIDs) != 2 {
		t.Fatalf("Expected 2 subjects, got %d", len(resp.DMSIDs))
	}
	names := map[string]string{}
	for _, s := range resp.DMSIDs {
		names[s.DMSID] = s.DMSName
	}
	if names["D101"] != "Sharma Kirana" || names["D102"] != "Gupta Traders" {
		t.Errorf("Unexpected subjects: %v", resp.DMSIDs)
	}
}

func TestListSubjectsRespectsLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()
	cfg.SubjectLimit = 2
	handler := NewHierarchyHandler(db, cfg)

	for _, id := range []string{"D1", "D2", "D3"} {
		testutil.SeedRosterEntry(t, db, "North", "AH4001", "WD01", id, "Outlet "+id)
	}

	req := httptest.NewRequest("GET", "/api/dms-ids/AH4001/WD01", nil)
	req.SetPathValue("section", "AH4001")
	req.SetPathValue("destination", "WD01")
	w := httptest.NewRecorder()
	handler.ListSubjects(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SubjectsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.DMSIDs) != 2 {
		t.Errorf("Expected subject limit of 2 to apply, got %d", len(resp.DMSIDs))
	}
}
