// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Canvass API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - HierarchyHandler: cascading roster lookups (branches → sections → destinations → subjects)
  - CompletionHandler: on-demand section completion percentages
  - SurveyHandler: survey submission
  - AdminHandler: login, filtered response listing, aggregate stats
  - ExportHandler: xlsx export of filtered responses
  - QuestionHandler: question-set CRUD

Handlers are created via constructor functions that accept *sql.DB and Config:

	hierarchyHandler := handlers.NewHierarchyHandler(db, cfg)

# Survey Flow

A surveyor descends the roster hierarchy, then submits:

	GET  /api/branches
	GET  /api/sections/{branch}
	GET  /api/wd-destinations/{section}
	GET  /api/dms-ids/{section}/{destination}
	POST /api/survey/submit

Unmatched hierarchy keys return empty lists, not errors.

# Completion

	GET /api/section-completion/{section}

Completion is recomputed from the roster and response stores on every
call; a subject counts as completed once it has at least one response,
no matter how many times it was surveyed.

# Admin Surface

	POST /api/admin/login → bearer token
	GET  /api/admin/responses?branch=&section=&start_date=&end_date=
	GET  /api/admin/stats
	GET  /api/admin/export?branch=&section=
	GET/POST/PUT/DELETE /api/admin/questions

All admin routes except login require the Authorization: Bearer header.
*/
package handlers
