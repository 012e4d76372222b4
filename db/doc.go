// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

CreateSchema is idempotent (IF NOT EXISTS throughout) and runs on every
process start, covering the tables and the branch/section/submitted_at
indexes the query paths rely on.

The roster table has no foreign key from survey_response: rosters are
replaced wholesale by the importer while responses accumulate
independently, so referential integrity between the two is resolved at
read time, not enforced at write time.
*/
package db
