// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"testing"
	"time"

	"github.com/fieldworks-dev/canvass/models"
)

func sampleResponse() models.SurveyResponse {
	details := "slow payments"
	return models.SurveyResponse{
		ID:                         "abc-123",
		Branch:                     "North",
		Section:                    "AH4001",
		WDDestination:              "WD01 x Ambur",
		DMSID:                      "D101",
		DMSName:                    "Sharma Kirana",
		Q1ITCBiscuitsSales:         "Rs 1k-5k",
		Q2TotalBiscuitsSales:       "<Rs.20K",
		Q3ITCNDSales:               "<Rs.5k",
		Q4NDSalesSWD:               "<Rs.2k",
		Q5LoyaltyPrograms:          []string{"Britannia", "Nestle"},
		Q6CategoryHandlers:         []string{"Atta"},
		Q7NotPurchasingReasons:     []string{"Credit related", "Delivery Issues"},
		Q7RelationshipIssueDetails: &details,
		SubmittedAt:                time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRow(t *testing.T) {
	row := Row(sampleResponse())

	if len(row) != len(Headers) {
		t.Fatalf("Row has %d columns, Headers has %d", len(row), len(Headers))
	}
	if row[0] != "abc-123" || row[1] != "North" {
		t.Errorf("Unexpected leading columns: %v", row[:2])
	}
	if row[10] != "Britannia, Nestle" {
		t.Errorf("Multi-select not joined with ', ': %q", row[10])
	}
	if row[12] != "Credit related, Delivery Issues" {
		t.Errorf("Unexpected q7 column: %q", row[12])
	}
	if row[13] != "slow payments" {
		t.Errorf("Unexpected details column: %q", row[13])
	}
	if row[14] != "2025-06-01T12:00:00Z" {
		t.Errorf("Unexpected timestamp column: %q", row[14])
	}
}

func TestRowNilDetails(t *testing.T) {
	resp := sampleResponse()
	resp.Q7RelationshipIssueDetails = nil

	row := Row(resp)
	if row[13] != "" {
		t.Errorf("Nil details should project as empty string, got %q", row[13])
	}
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook([]models.SurveyResponse{sampleResponse(), sampleResponse()})
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("Failed to read sheet back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	for i, h := range Headers {
		if rows[0][i] != h {
			t.Errorf("Header column %d: expected %q, got %q", i, h, rows[0][i])
		}
	}
}
