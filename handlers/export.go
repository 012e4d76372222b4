// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/export"
	"github.com/fieldworks-dev/canvass/middleware"
)

type ExportHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewExportHandler(db *sql.DB, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{db: db, cfg: cfg}
}

// ExportResponses handles GET /api/admin/export
// Streams an xlsx workbook of the filtered responses. The row set matches
// the admin listing for the same branch/section filters, up to the
// export cap.
func (h *ExportHandler) ExportResponses(w http.ResponseWriter, r *http.Request) {
	filter, errMsg := parseResponseFilter(r)
	if errMsg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, errMsg)
		return
	}

	responses, err := queryResponses(h.db, filter, h.cfg.ExportLimit)
	if err != nil {
		slog.Error("failed to query responses for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	wb, err := export.Workbook(responses)
	if err != nil {
		slog.Error("failed to build export workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}
	defer wb.Close()

	w.Header().Set("Content-Type", export.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename=survey_responses.xlsx`)
	w.WriteHeader(http.StatusOK)
	if err := wb.Write(w); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("failed to stream export workbook", "error", err)
	}

	slog.Info("responses exported", "rows", len(responses), "branch", filter.Branch, "section", filter.Section)
}
