// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Question type constants
const (
	QuestionSingle = "single"
	QuestionMulti  = "multi"
	QuestionText   = "text"
)

// Request types

type SubmitSurveyRequest struct {
	Branch                     string   `json:"branch"`
	Section                    string   `json:"section"`
	WDDestination              string   `json:"wd_destination"`
	DMSID                      string   `json:"dms_id"`
	DMSName                    string   `json:"dms_name"`
	Q1ITCBiscuitsSales         string   `json:"q1_itc_biscuits_sales"`
	Q2TotalBiscuitsSales       string   `json:"q2_total_biscuits_sales"`
	Q3ITCNDSales               string   `json:"q3_itc_nd_sales"`
	Q4NDSalesSWD               string   `json:"q4_nd_sales_swd"`
	Q5LoyaltyPrograms          []string `json:"q5_loyalty_programs"`
	Q6CategoryHandlers         []string `json:"q6_category_handlers"`
	Q7NotPurchasingReasons     []string `json:"q7_not_purchasing_reasons"`
	Q7RelationshipIssueDetails *string  `json:"q7_relationship_issue_details"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type QuestionCreateRequest struct {
	QuestionNumber      int              `json:"question_number"`
	QuestionText        string           `json:"question_text"`
	QuestionType        string           `json:"question_type"`
	Options             []QuestionOption `json:"options"`
	IsMandatory         bool             `json:"is_mandatory"`
	HasConditionalInput bool             `json:"has_conditional_input"`
	ConditionalTrigger  *string          `json:"conditional_trigger"`
}

// QuestionUpdateRequest carries a partial update; nil fields keep their
// stored value. Last writer wins, there is no concurrency token.
type QuestionUpdateRequest struct {
	QuestionNumber      *int              `json:"question_number"`
	QuestionText        *string           `json:"question_text"`
	QuestionType        *string           `json:"question_type"`
	Options             *[]QuestionOption `json:"options"`
	IsMandatory         *bool             `json:"is_mandatory"`
	HasConditionalInput *bool             `json:"has_conditional_input"`
	ConditionalTrigger  *string           `json:"conditional_trigger"`
}

// Response types

type BranchesResponse struct {
	Branches []string `json:"branches"`
}

type SectionsResponse struct {
	Sections []string `json:"sections"`
}

type WDDestinationsResponse struct {
	WDDestinations []string `json:"wd_destinations"`
}

type SubjectRef struct {
	DMSID   string `json:"dms_id"`
	DMSName string `json:"dms_name"`
}

type SubjectsResponse struct {
	DMSIDs []SubjectRef `json:"dms_ids"`
}

type SectionCompletion struct {
	Section              string  `json:"section"`
	TotalDMSIDs          int     `json:"total_dms_ids"`
	CompletedSurveys     int     `json:"completed_surveys"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type SubmitSurveyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type ResponseListResponse struct {
	Responses []SurveyResponse `json:"responses"`
	Total     int              `json:"total"`
}

type BranchCount struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
}

type StatsResponse struct {
	TotalResponses    int           `json:"total_responses"`
	ResponsesByBranch []BranchCount `json:"responses_by_branch"`
	RecentResponses   int           `json:"recent_responses"`
}

type QuestionsResponse struct {
	Questions []SurveyQuestion `json:"questions"`
}

type QuestionCreateResponse struct {
	Success  bool           `json:"success"`
	Question SurveyQuestion `json:"question"`
}

type ConfirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

// RosterEntry is one addressable survey subject. The roster is loaded in
// bulk by the importer and is read-only to the API; (section, dms_id)
// identifies a subject.
type RosterEntry struct {
	Branch        string `json:"branch"`
	Section       string `json:"section"`
	WDDestination string `json:"wd_destination"`
	DMSID         string `json:"dms_id"`
	DMSName       string `json:"dms_name"`
}

// SurveyResponse is one completed submission. submitted_at is set once at
// insert and never modified. A response may reference a subject absent
// from the current roster batch; such responses still appear in listings
// and exports but are invisible to completion percentages.
type SurveyResponse struct {
	ID                         string    `json:"id"`
	Branch                     string    `json:"branch"`
	Section                    string    `json:"section"`
	WDDestination              string    `json:"wd_destination"`
	DMSID                      string    `json:"dms_id"`
	DMSName                    string    `json:"dms_name"`
	Q1ITCBiscuitsSales         string    `json:"q1_itc_biscuits_sales"`
	Q2TotalBiscuitsSales       string    `json:"q2_total_biscuits_sales"`
	Q3ITCNDSales               string    `json:"q3_itc_nd_sales"`
	Q4NDSalesSWD               string    `json:"q4_nd_sales_swd"`
	Q5LoyaltyPrograms          []string  `json:"q5_loyalty_programs"`
	Q6CategoryHandlers         []string  `json:"q6_category_handlers"`
	Q7NotPurchasingReasons     []string  `json:"q7_not_purchasing_reasons"`
	Q7RelationshipIssueDetails *string   `json:"q7_relationship_issue_details"`
	SubmittedAt                time.Time `json:"submitted_at"`
}

type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SurveyQuestion struct {
	ID                  string           `json:"id"`
	QuestionNumber      int              `json:"question_number"`
	QuestionText        string           `json:"question_text"`
	QuestionType        string           `json:"question_type"`
	Options             []QuestionOption `json:"options"`
	IsMandatory         bool             `json:"is_mandatory"`
	HasConditionalInput bool             `json:"has_conditional_input"`
	ConditionalTrigger  *string          `json:"conditional_trigger"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ResponseFilter is the optional predicate set shared by the admin
// listing and the export.
type ResponseFilter struct {
	Branch    string
	Section   string
	StartDate *time.Time
	EndDate   *time.Time
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
