// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ method
routing. Public survey routes are logged; admin routes are additionally
wrapped with the bearer-token guard. The whole mux is wrapped in CORS.
*/
package router
