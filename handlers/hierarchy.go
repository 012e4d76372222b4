// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/middleware"
	"github.com/fieldworks-dev/canvass/models"
)

// HierarchyHandler answers the cascading roster lookups that walk a
// surveyor from branch down to a single DMS customer. All reads are
// against the roster only; key matching is exact and case-sensitive, and
// an unmatched key yields an empty list, never an error.
type HierarchyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHierarchyHandler(db *sql.DB, cfg cliparse.Config) *HierarchyHandler {
	return &HierarchyHandler{db: db, cfg: cfg}
}

// ListBranches handles GET /api/branches
func (h *HierarchyHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.distinctValues(`
		SELECT DISTINCT branch FROM roster_entry ORDER BY branch
	`)
	if err != nil {
		slog.Error("failed to query branches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BranchesResponse{Branches: branches})
}

// ListSections handles GET /api/sections/{branch}
func (h *HierarchyHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	branch := r.PathValue("branch")
	if branch == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "branch is required")
		return
	}

	sections, err := h.distinctValues(`
		SELECT DISTINCT section FROM roster_entry WHERE branch = $1 ORDER BY section
	`, branch)
	if err != nil {
		slog.Error("failed to query sections", "branch", branch, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SectionsResponse{Sections: sections})
}

// ListWDDestinations handles GET /api/wd-destinations/{section}
func (h *HierarchyHandler) ListWDDestinations(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if section == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	destinations, err := h.distinctValues(`
		SELECT DISTINCT wd_destination FROM roster_entry WHERE section = $1 ORDER BY wd_destination
	`, section)
	if err != nil {
		slog.Error("failed to query wd destinations", "section", section, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WDDestinationsResponse{WDDestinations: destinations})
}

// ListSubjects handles GET /api/dms-ids/{section}/{destination}
// Unlike the distinct lookups above, this returns full subject pairs in
// store order, capped at the configured subject limit.
func (h *HierarchyHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	destination := r.PathValue("destination")
	if section == "" || destination == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section and destination are required")
		return
	}

	rows, err := h.db.Query(`
		SELECT dms_id, dms_name
		FROM roster_entry
		WHERE section = $1 AND wd_destination = $2
		LIMIT $3
	`, section, destination, h.cfg.SubjectLimit)
	if err != nil {
		slog.Error("failed to query subjects", "section", section, "destination", destination, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	subjects := []models.SubjectRef{}
	for rows.Next() {
		var s models.SubjectRef
		if err := rows.Scan(&s.DMSID, &s.DMSName); err != nil {
			slog.Error("failed to scan subject", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate subjects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubjectsResponse{DMSIDs: subjects})
}

func (h *HierarchyHandler) distinctValues(query string, args ...any) ([]string, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
