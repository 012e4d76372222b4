// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/middleware"
	"github.com/fieldworks-dev/canvass/models"
)

// QuestionHandler manages the configurable question set. Question edits
// are independent of the roster and response lifecycles and use
// last-writer-wins semantics.
type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// ListQuestions handles GET /api/admin/questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, question_number, question_text, question_type, options,
		       is_mandatory, has_conditional_input, conditional_trigger,
		       created_at, updated_at
		FROM survey_question
		ORDER BY question_number
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	questions := []models.SurveyQuestion{}
	for rows.Next() {
		var q models.SurveyQuestion
		var optionsJSON []byte
		err := rows.Scan(
			&q.ID, &q.QuestionNumber, &q.QuestionText, &q.QuestionType, &optionsJSON,
			&q.IsMandatory, &q.HasConditionalInput, &q.ConditionalTrigger,
			&q.CreatedAt, &q.UpdatedAt,
		)
		if err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
			slog.Error("failed to parse question options", "id", q.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{Questions: questions})
}

// CreateQuestion handles POST /api/admin/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionCreateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateQuestion(req.QuestionText, req.QuestionType, req.Options, req.HasConditionalInput, req.ConditionalTrigger); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now().UTC()
	question := models.SurveyQuestion{
		ID:                  uuid.NewString(),
		QuestionNumber:      req.QuestionNumber,
		QuestionText:        req.QuestionText,
		QuestionType:        req.QuestionType,
		Options:             req.Options,
		IsMandatory:         req.IsMandatory,
		HasConditionalInput: req.HasConditionalInput,
		ConditionalTrigger:  req.ConditionalTrigger,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if question.Options == nil {
		question.Options = []models.QuestionOption{}
	}

	optionsJSON, err := json.Marshal(question.Options)
	if err != nil {
		slog.Error("failed to encode question options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO survey_question (
			id, question_number, question_text, question_type, options,
			is_mandatory, has_conditional_input, conditional_trigger, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, question.ID, question.QuestionNumber, question.QuestionText, question.QuestionType, optionsJSON,
		question.IsMandatory, question.HasConditionalInput, question.ConditionalTrigger,
		question.CreatedAt, question.UpdatedAt)

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "id", question.ID, "number", question.QuestionNumber)

	middleware.JSONResponse(w, http.StatusCreated, models.QuestionCreateResponse{
		Success:  true,
		Question: question,
	})
}

// UpdateQuestion handles PUT /api/admin/questions/{id}
// Partial update: absent fields keep their stored value.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.QuestionUpdateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionType != nil && !validQuestionType(*req.QuestionType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_type must be single, multi, or text")
		return
	}

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.QuestionNumber != nil {
		add("question_number", *req.QuestionNumber)
	}
	if req.QuestionText != nil {
		add("question_text", *req.QuestionText)
	}
	if req.QuestionType != nil {
		add("question_type", *req.QuestionType)
	}
	if req.Options != nil {
		optionsJSON, err := json.Marshal(*req.Options)
		if err != nil {
			slog.Error("failed to encode question options", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
			return
		}
		add("options", optionsJSON)
	}
	if req.IsMandatory != nil {
		add("is_mandatory", *req.IsMandatory)
	}
	if req.HasConditionalInput != nil {
		add("has_conditional_input", *req.HasConditionalInput)
	}
	if req.ConditionalTrigger != nil {
		add("conditional_trigger", *req.ConditionalTrigger)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, questionID)
	query := fmt.Sprintf("UPDATE survey_question SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	result, err := h.db.Exec(query, args...)
	if err != nil {
		slog.Error("failed to update question", "id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read update result", "id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	slog.Info("question updated", "id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.ConfirmResponse{
		Success: true,
		Message: "Question updated",
	})
}

// DeleteQuestion handles DELETE /api/admin/questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	result, err := h.db.Exec(`DELETE FROM survey_question WHERE id = $1`, questionID)
	if err != nil {
		slog.Error("failed to delete question", "id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read delete result", "id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	slog.Info("question deleted", "id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.ConfirmResponse{
		Success: true,
		Message: "Question deleted",
	})
}

// validateQuestion checks the question shape. A conditional trigger must
// name one of the option values when conditional input is enabled.
func validateQuestion(text, qtype string, options []models.QuestionOption, hasConditional bool, trigger *string) string {
	if text == "" {
		return "question_text is required"
	}
	if !validQuestionType(qtype) {
		return "question_type must be single, multi, or text"
	}
	if qtype != models.QuestionText && len(options) == 0 {
		return "options are required for select questions"
	}
	if qtype == models.QuestionText && len(options) > 0 {
		return "options must be empty for text questions"
	}
	if hasConditional {
		if trigger == nil || *trigger == "" {
			return "conditional_trigger is required when has_conditional_input is set"
		}
		found := false
		for _, opt := range options {
			if opt.Value == *trigger {
				found = true
				break
			}
		}
		if !found {
			return "conditional_trigger must match an option value"
		}
	}
	return ""
}

func validQuestionType(qtype string) bool {
	return qtype == models.QuestionSingle || qtype == models.QuestionMulti || qtype == models.QuestionText
}
