// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"

	"github.com/fieldworks-dev/canvass/auth"
	"github.com/fieldworks-dev/canvass/testutil"
)

func TestRouterRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()
	handler := NewRouter(db, cfg)

	token, err := auth.GenerateSessionToken(cfg.SessionTokenSalt)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "health check", method: "GET", path: "/health", expectedStatus: http.StatusOK},
		{name: "branches", method: "GET", path: "/api/branches", expectedStatus: http.StatusOK},
		{name: "sections", method: "GET", path: "/api/sections/North", expectedStatus: http.StatusOK},
		{name: "completion", method: "GET", path: "/api/section-completion/AH4001", expectedStatus: http.StatusOK},
		{name: "admin stats without token", method: "GET", path: "/api/admin/stats", expectedStatus: http.StatusUnauthorized},
		{name: "admin stats with token", method: "GET", path: "/api/admin/stats", token: token, expectedStatus: http.StatusOK},
		{name: "admin questions without token", method: "GET", path: "/api/admin/questions", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", method: "GET", path: "/nope", expectedStatus: http.StatusNotFound},
		{name: "wrong method on submit", method: "GET", path: "/api/survey/submit", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	handler := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("OPTIONS", "/api/branches", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Missing CORS headers on preflight")
	}
}
