// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request start/completion logging via slog
  - RequireAdmin: bearer-token guard for admin routes
  - CORS: cross-origin support for the survey frontend
  - JSONResponse / ErrorResponse / ParseJSONBody: JSON plumbing
*/
package middleware
