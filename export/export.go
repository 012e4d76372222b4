// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fieldworks-dev/canvass/models"
)

// SheetName is the worksheet holding the response rows.
const SheetName = "Survey Responses"

// MIMEType is the content type for the generated workbook.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Headers is the fixed column order. Tools downstream key on these
// positions, so the order must not change between calls or releases.
var Headers = []string{
	"ID", "Branch", "Section", "WD Destination", "DMS ID", "DMS Name",
	"Q1: ITC Biscuits Sales", "Q2: Total Biscuits Sales", "Q3: ITC ND Sales",
	"Q4: ND Sales SWD", "Q5: Loyalty Programs", "Q6: Category Handlers",
	"Q7: Not Purchasing Reasons", "Q7: Relationship Issue Details", "Submitted At",
}

// Row projects one response into the column order of Headers.
// Multi-select answers are joined with ", ".
func Row(resp models.SurveyResponse) []string {
	details := ""
	if resp.Q7RelationshipIssueDetails != nil {
		details = *resp.Q7RelationshipIssueDetails
	}
	return []string{
		resp.ID,
		resp.Branch,
		resp.Section,
		resp.WDDestination,
		resp.DMSID,
		resp.DMSName,
		resp.Q1ITCBiscuitsSales,
		resp.Q2TotalBiscuitsSales,
		resp.Q3ITCNDSales,
		resp.Q4NDSalesSWD,
		strings.Join(resp.Q5LoyaltyPrograms, ", "),
		strings.Join(resp.Q6CategoryHandlers, ", "),
		strings.Join(resp.Q7NotPurchasingReasons, ", "),
		details,
		resp.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

// Workbook builds an in-memory xlsx workbook with a header row followed
// by one row per response. The caller owns the file and must Close it.
func Workbook(responses []models.SurveyResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := writeRow(f, 1, Headers); err != nil {
		return nil, err
	}
	for i, resp := range responses {
		if err := writeRow(f, i+2, Row(resp)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
