// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/fieldworks-dev/canvass/auth"
	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/middleware"
	"github.com/fieldworks-dev/canvass/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// Login handles POST /api/admin/login
// A mismatched email and a mismatched password produce the same 401.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := auth.VerifyAdmin(req.Email, req.Password, h.cfg.AdminEmail, h.cfg.AdminPasswordHash); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateSessionToken(h.cfg.SessionTokenSalt)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("admin logged in", "email", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Token: token,
		Email: req.Email,
	})
}

// ListResponses handles GET /api/admin/responses
// Optional query params: branch, section, start_date, end_date.
func (h *AdminHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	filter, errMsg := parseResponseFilter(r)
	if errMsg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, errMsg)
		return
	}

	responses, err := queryResponses(h.db, filter, h.cfg.ListLimit)
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResponseListResponse{
		Responses: responses,
		Total:     len(responses),
	})
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var total int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM survey_response`).Scan(&total)
	if err != nil {
		slog.Error("failed to count responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Branch is a secondary sort key so equal counts order stably.
	rows, err := h.db.Query(`
		SELECT branch, COUNT(*) AS count
		FROM survey_response
		GROUP BY branch
		ORDER BY count DESC, branch
	`)
	if err != nil {
		slog.Error("failed to group responses by branch", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	byBranch := []models.BranchCount{}
	for rows.Next() {
		var bc models.BranchCount
		if err := rows.Scan(&bc.Branch, &bc.Count); err != nil {
			slog.Error("failed to scan branch count", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		byBranch = append(byBranch, bc)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate branch counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	var recent int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM survey_response WHERE submitted_at >= $1
	`, weekAgo).Scan(&recent)
	if err != nil {
		slog.Error("failed to count recent responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalResponses:    total,
		ResponsesByBranch: byBranch,
		RecentResponses:   recent,
	})
}

// parseResponseFilter reads the shared listing/export filter params.
// Returns a non-empty message on a malformed date.
func parseResponseFilter(r *http.Request) (models.ResponseFilter, string) {
	q := r.URL.Query()
	filter := models.ResponseFilter{
		Branch:  q.Get("branch"),
		Section: q.Get("section"),
	}

	if s := q.Get("start_date"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			return filter, "invalid start_date"
		}
		filter.StartDate = &t
	}
	if s := q.Get("end_date"); s != "" {
		t, err := parseDateParam(s)
		if err != nil {
			return filter, "invalid end_date"
		}
		filter.EndDate = &t
	}

	return filter, ""
}

// parseDateParam accepts RFC 3339 timestamps or bare dates
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", s)
}

// queryResponses runs the filtered listing shared by the admin listing
// and the export: newest first, inclusive date bounds, capped at limit.
func queryResponses(db *sql.DB, filter models.ResponseFilter, limit int) ([]models.SurveyResponse, error) {
	var where []string
	var args []any

	if filter.Branch != "" {
		args = append(args, filter.Branch)
		where = append(where, fmt.Sprintf("branch = $%d", len(args)))
	}
	if filter.Section != "" {
		args = append(args, filter.Section)
		where = append(where, fmt.Sprintf("section = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		where = append(where, fmt.Sprintf("submitted_at >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		where = append(where, fmt.Sprintf("submitted_at <= $%d", len(args)))
	}

	query := `
		SELECT id, branch, section, wd_destination, dms_id, dms_name,
		       q1_itc_biscuits_sales, q2_total_biscuits_sales, q3_itc_nd_sales, q4_nd_sales_swd,
		       q5_loyalty_programs, q6_category_handlers, q7_not_purchasing_reasons,
		       q7_relationship_issue_details, submitted_at
		FROM survey_response`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d", len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []models.SurveyResponse{}
	for rows.Next() {
		var resp models.SurveyResponse
		err := rows.Scan(
			&resp.ID, &resp.Branch, &resp.Section, &resp.WDDestination, &resp.DMSID, &resp.DMSName,
			&resp.Q1ITCBiscuitsSales, &resp.Q2TotalBiscuitsSales, &resp.Q3ITCNDSales, &resp.Q4NDSalesSWD,
			pq.Array(&resp.Q5LoyaltyPrograms), pq.Array(&resp.Q6CategoryHandlers), pq.Array(&resp.Q7NotPurchasingReasons),
			&resp.Q7RelationshipIssueDetails, &resp.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
