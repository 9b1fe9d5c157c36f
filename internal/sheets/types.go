package sheets

import (
	"encoding/json"
	"fmt"
	"strings"

	sheets "google.golang.org/api/sheets/v4"
)

// SpreadsheetInfo represents metadata about a spreadsheet.
type SpreadsheetInfo struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	URL    string      `json:"url"`
	Sheets []SheetInfo `json:"sheets,omitempty"`
}

// SpreadsheetListEntry represents one spreadsheet in a listing, sourced
// from Drive metadata.
type SpreadsheetListEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	WebViewLink  string `json:"webViewLink,omitempty"`
}

// SheetInfo represents a single sheet within a spreadsheet.
type SheetInfo struct {
	SheetID     int64  `json:"sheetId"`
	Title       string `json:"title"`
	Index       int64  `json:"index"`
	RowCount    int64  `json:"rowCount,omitempty"`
	ColumnCount int64  `json:"columnCount,omitempty"`
}

// ValueRange holds cell values read from a range.
type ValueRange struct {
	Range  string          `json:"range"`
	Values [][]interface{} `json:"values"`
}

// UpdateResult reports the extent of a write operation.
type UpdateResult struct {
	UpdatedRange   string `json:"updatedRange"`
	UpdatedRows    int64  `json:"updatedRows"`
	UpdatedColumns int64  `json:"updatedColumns"`
	UpdatedCells   int64  `json:"updatedCells"`
}

// ParseValues decodes a JSON array of rows into cell values,
// e.g. `[["Name","Age"],["Ana",30]]`.
func ParseValues(valuesJSON string) ([][]interface{}, error) {
	var values [][]interface{}
	if err := json.Unmarshal([]byte(valuesJSON), &values); err != nil {
		return nil, fmt.Errorf("failed to parse values: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("values must contain at least one row")
	}
	return values, nil
}

// toSpreadsheetInfo converts an API spreadsheet to a SpreadsheetInfo.
func toSpreadsheetInfo(s *sheets.Spreadsheet) *SpreadsheetInfo {
	info := &SpreadsheetInfo{
		ID:  s.SpreadsheetId,
		URL: s.SpreadsheetUrl,
	}
	if info.URL == "" {
		info.URL = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", s.SpreadsheetId)
	}
	if s.Properties != nil {
		info.Title = s.Properties.Title
	}
	for _, sheet := range s.Sheets {
		if sheet.Properties != nil {
			info.Sheets = append(info.Sheets, toSheetInfo(sheet.Properties))
		}
	}
	return info
}

// toSheetInfo converts API sheet properties to a SheetInfo.
func toSheetInfo(props *sheets.SheetProperties) SheetInfo {
	info := SheetInfo{
		SheetID: props.SheetId,
		Title:   props.Title,
		Index:   props.Index,
	}
	if props.GridProperties != nil {
		info.RowCount = props.GridProperties.RowCount
		info.ColumnCount = props.GridProperties.ColumnCount
	}
	return info
}

// escapeQueryTerm escapes single quotes in a Drive query term.
func escapeQueryTerm(term string) string {
	return strings.ReplaceAll(term, "'", `\'`)
}
