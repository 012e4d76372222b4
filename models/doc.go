// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - RosterEntry: one addressable survey subject, keyed by (section, dms_id)
  - SurveyResponse: one completed submission with fixed answer fields
  - SurveyQuestion: a configurable question with typed options
  - ResponseFilter: optional predicates shared by listing and export

# Question Types

	QuestionSingle = "single"
	QuestionMulti  = "multi"
	QuestionText   = "text"

Multi-select answers are string slices; single-select and free-text
answers are scalars. A question with HasConditionalInput set names the
option value (ConditionalTrigger) that unlocks a free-text follow-up.
*/
package models
