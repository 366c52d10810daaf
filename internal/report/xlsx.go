package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Summary"
	SheetPullRequests = "My PRs"
	SheetReviews      = "My Reviews"
	SheetComments     = "My Comments"
)

// WriteWorkbook saves the summary and the three tables as sheets of one workbook
func WriteWorkbook(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Identity", r.Identity},
		{"PR's", r.TotalPullRequests},
		{"My PR's", len(r.MyPullRequests)},
		{"My reviews", len(r.MyReviews)},
		{"My comments", len(r.MyComments)},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	prRows := [][]interface{}{{"ID", "Name"}}
	for _, pr := range r.MyPullRequests {
		prRows = append(prRows, []interface{}{pr.ID, pr.Title})
	}
	reviewRows := [][]interface{}{{"ID", "Name"}}
	for _, v := range r.MyReviews {
		reviewRows = append(reviewRows, []interface{}{v.PullRequestID, v.Title})
	}
	commentRows := [][]interface{}{{"ID", "Name", "Comment"}}
	for _, c := range r.MyComments {
		commentRows = append(commentRows, []interface{}{c.PullRequestID, c.Title, c.Body})
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetPullRequests, prRows},
		{SheetReviews, reviewRows},
		{SheetComments, commentRows},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, "B", "B", 60); err != nil {
			return fmt.Errorf("failed to size sheet %s: %w", s.name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
