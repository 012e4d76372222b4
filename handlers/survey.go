// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/middleware"
	"github.com/fieldworks-dev/canvass/models"
)

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{db: db, cfg: cfg}
}

// SubmitSurvey handles POST /api/survey/submit
// The insert is a single synchronous statement: once the caller sees the
// success response, the submission is visible to listings and completion.
func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateSubmission(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	// Absent multi-selects become empty arrays, not NULLs
	if req.Q5LoyaltyPrograms == nil {
		req.Q5LoyaltyPrograms = []string{}
	}
	if req.Q6CategoryHandlers == nil {
		req.Q6CategoryHandlers = []string{}
	}

	id := uuid.NewString()
	submittedAt := time.Now().UTC()

	_, err := h.db.Exec(`
		INSERT INTO survey_response (
			id, branch, section, wd_destination, dms_id, dms_name,
			q1_itc_biscuits_sales, q2_total_biscuits_sales, q3_itc_nd_sales, q4_nd_sales_swd,
			q5_loyalty_programs, q6_category_handlers, q7_not_purchasing_reasons,
			q7_relationship_issue_details, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, id, req.Branch, req.Section, req.WDDestination, req.DMSID, req.DMSName,
		req.Q1ITCBiscuitsSales, req.Q2TotalBiscuitsSales, req.Q3ITCNDSales, req.Q4NDSalesSWD,
		pq.Array(req.Q5LoyaltyPrograms), pq.Array(req.Q6CategoryHandlers), pq.Array(req.Q7NotPurchasingReasons),
		req.Q7RelationshipIssueDetails, submittedAt)

	if err != nil {
		slog.Error("failed to insert survey response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit survey")
		return
	}

	slog.Info("survey submitted", "id", id, "branch", req.Branch, "section", req.Section, "dms_id", req.DMSID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitSurveyResponse{
		Success: true,
		Message: "Survey submitted successfully",
		ID:      id,
	})
}

// validateSubmission checks the submission shape: the full hierarchical
// key, the mandatory single-select answers, and the mandatory reasons
// list. Returns an empty string when valid. Answers are not cross-checked
// against the roster - responses for unknown subjects are accepted.
func validateSubmission(req models.SubmitSurveyRequest) string {
	switch {
	case req.Branch == "":
		return "branch is required"
	case req.Section == "":
		return "section is required"
	case req.WDDestination == "":
		return "wd_destination is required"
	case req.DMSID == "":
		return "dms_id is required"
	case req.Q1ITCBiscuitsSales == "":
		return "q1_itc_biscuits_sales is required"
	case req.Q2TotalBiscuitsSales == "":
		return "q2_total_biscuits_sales is required"
	case req.Q3ITCNDSales == "":
		return "q3_itc_nd_sales is required"
	case req.Q4NDSalesSWD == "":
		return "q4_nd_sales_swd is required"
	case len(req.Q7NotPurchasingReasons) == 0:
		return "q7_not_purchasing_reasons is required"
	}
	return ""
}
