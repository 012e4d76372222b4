// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Canvass survey API server.

Canvass is a field-survey collection backend: surveyors walk a cascading
roster (branch → section → WD destination → DMS customer), submit a
structured questionnaire for the chosen outlet, and administrators track
completion, browse and export responses, and manage the question set.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_EMAIL (--admin-email): Admin login email
  - ADMIN_PASSWORD_HASH (--admin-password-hash): bcrypt hash of the admin password
  - SESSION_TOKEN_SALT (--session-salt): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - --subject-limit / --list-limit / --export-limit: result-set caps

A .env file in the working directory is loaded at startup.

# Roster Import

The roster is replaced wholesale from a spreadsheet:

	go run main.go -import outlets.xlsx

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (hierarchy, completion, survey, admin, export, questions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, auth guard, JSON helpers
  - models: Request/response types
  - auth: Credential checks and session tokens
  - db: Schema creation
  - roster: Bulk roster ingestion
  - export: Spreadsheet projection of responses
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
