// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/fieldworks-dev/canvass/cliparse"
	"github.com/fieldworks-dev/canvass/handlers"
	"github.com/fieldworks-dev/canvass/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	hierarchyHandler := handlers.NewHierarchyHandler(db, cfg)
	completionHandler := handlers.NewCompletionHandler(db, cfg)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)
	exportHandler := handlers.NewExportHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.SessionTokenSalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Cascading roster lookups (public)
	mux.HandleFunc("GET /api/branches", middleware.WithLogging(hierarchyHandler.ListBranches))
	mux.HandleFunc("GET /api/sections/{branch}", middleware.WithLogging(hierarchyHandler.ListSections))
	mux.HandleFunc("GET /api/wd-destinations/{section}", middleware.WithLogging(hierarchyHandler.ListWDDestinations))
	mux.HandleFunc("GET /api/dms-ids/{section}/{destination}", middleware.WithLogging(hierarchyHandler.ListSubjects))

	// Completion tracking (public)
	mux.HandleFunc("GET /api/section-completion/{section}", middleware.WithLogging(completionHandler.GetSectionCompletion))

	// Survey submission (public)
	mux.HandleFunc("POST /api/survey/submit", middleware.WithLogging(surveyHandler.SubmitSurvey))

	// Admin surface
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("GET /api/admin/responses", admin(adminHandler.ListResponses))
	mux.HandleFunc("GET /api/admin/stats", admin(adminHandler.GetStats))
	mux.HandleFunc("GET /api/admin/export", admin(exportHandler.ExportResponses))
	mux.HandleFunc("GET /api/admin/questions", admin(questionHandler.ListQuestions))
	mux.HandleFunc("POST /api/admin/questions", admin(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /api/admin/questions/{id}", admin(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /api/admin/questions/{id}", admin(questionHandler.DeleteQuestion))

	// Root endpoint
	mux.HandleFunc("GET /api/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Canvass Survey API"}`))
	})

	return middleware.CORS(mux)
}
