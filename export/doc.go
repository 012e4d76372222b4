// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export projects survey responses into an xlsx workbook.

The column order (Headers) is fixed and stable across calls; Row and
Workbook are pure of HTTP so the projection can be tested without a
server or a database.
*/
package export
