// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables and indexes needed for the application.
// Safe to call on every process start - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Roster: master list of addressable survey subjects.
-- Loaded in bulk by the importer (full replacement); read-only to the API.
CREATE TABLE IF NOT EXISTS roster_entry (
    branch TEXT NOT NULL,
    section TEXT NOT NULL,
    wd_destination TEXT NOT NULL,
    dms_id TEXT NOT NULL,
    dms_name TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (section, dms_id)
);

CREATE INDEX IF NOT EXISTS idx_roster_branch ON roster_entry(branch);
CREATE INDEX IF NOT EXISTS idx_roster_section ON roster_entry(section);
CREATE INDEX IF NOT EXISTS idx_roster_section_destination ON roster_entry(section, wd_destination);

-- Survey responses. No foreign key to roster_entry: the two datasets are
-- refreshed independently, and a response must outlive roster reloads.
CREATE TABLE IF NOT EXISTS survey_response (
    id TEXT PRIMARY KEY,
    branch TEXT NOT NULL,
    section TEXT NOT NULL,
    wd_destination TEXT NOT NULL,
    dms_id TEXT NOT NULL,
    dms_name TEXT NOT NULL DEFAULT '',
    q1_itc_biscuits_sales TEXT NOT NULL,
    q2_total_biscuits_sales TEXT NOT NULL,
    q3_itc_nd_sales TEXT NOT NULL,
    q4_nd_sales_swd TEXT NOT NULL,
    q5_loyalty_programs TEXT[] NOT NULL DEFAULT '{}',
    q6_category_handlers TEXT[] NOT NULL DEFAULT '{}',
    q7_not_purchasing_reasons TEXT[] NOT NULL DEFAULT '{}',
    q7_relationship_issue_details TEXT,
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_response_branch ON survey_response(branch);
CREATE INDEX IF NOT EXISTS idx_response_section ON survey_response(section);
CREATE INDEX IF NOT EXISTS idx_response_submitted_at ON survey_response(submitted_at);
CREATE INDEX IF NOT EXISTS idx_response_section_dms ON survey_response(section, dms_id);

-- Configurable question set, edited through the admin surface.
CREATE TABLE IF NOT EXISTS survey_question (
    id TEXT PRIMARY KEY,
    question_number INTEGER NOT NULL,
    question_text TEXT NOT NULL,
    question_type TEXT NOT NULL CHECK (question_type IN ('single', 'multi', 'text')),
    options JSONB NOT NULL DEFAULT '[]',
    is_mandatory BOOLEAN NOT NULL DEFAULT TRUE,
    has_conditional_input BOOLEAN NOT NULL DEFAULT FALSE,
    conditional_trigger TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_question_number ON survey_question(question_number);
`
