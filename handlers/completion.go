// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math"
	"net/http"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/middleware"
	"github.com/fieldworks-dev/canvass/models"
)

// CompletionHandler computes section completion on demand from the roster
// and response stores. No running counter is kept: responses can arrive
// for subjects not yet in a roster batch and rosters are reloaded
// wholesale, so recomputation from the source of truth avoids drift.
type CompletionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCompletionHandler(db *sql.DB, cfg cliparse.Config) *CompletionHandler {
	return &CompletionHandler{db: db, cfg: cfg}
}

// GetSectionCompletion handles GET /api/section-completion/{section}
func (h *CompletionHandler) GetSectionCompletion(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	if section == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	var total int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM roster_entry WHERE section = $1
	`, section).Scan(&total)
	if err != nil {
		slog.Error("failed to count roster entries", "section", section, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Distinct subjects with at least one response, joined against the
	// roster so that responses for subjects dropped by a roster reload
	// never inflate the count. Repeat submissions collapse to one.
	var completed int
	err = h.db.QueryRow(`
		SELECT COUNT(DISTINCT r.dms_id)
		FROM survey_response r
		JOIN roster_entry e ON e.section = r.section AND e.dms_id = r.dms_id
		WHERE r.section = $1
	`, section).Scan(&completed)
	if err != nil {
		slog.Error("failed to count completed surveys", "section", section, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SectionCompletion{
		Section:              section,
		TotalDMSIDs:          total,
		CompletedSurveys:     completed,
		CompletionPercentage: CompletionPercentage(completed, total),
	})
}

// CompletionPercentage returns completed/total*100 rounded to one decimal
// place. An empty section is 0% complete by policy, not an error.
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
