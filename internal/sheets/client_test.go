package sheets

import (
	"testing"

	sheets "google.golang.org/api/sheets/v4"
)

func TestToSpreadsheetInfo(t *testing.T) {
	s := &sheets.Spreadsheet{
		SpreadsheetId:  "ss-1",
		SpreadsheetUrl: "https://docs.google.com/spreadsheets/d/ss-1/edit",
		Properties:     &sheets.SpreadsheetProperties{Title: "Budget"},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{
				SheetId: 0,
				Title:   "2026",
				GridProperties: &sheets.GridProperties{
					RowCount:    1000,
					ColumnCount: 26,
				},
			}},
			{Properties: &sheets.SheetProperties{SheetId: 1, Title: "2027", Index: 1}},
		},
	}

	info := toSpreadsheetInfo(s)

	if info.ID != "ss-1" || info.Title != "Budget" {
		t.Errorf("unexpected info: %+v", info)
	}
	if len(info.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(info.Sheets))
	}
	if info.Sheets[0].RowCount != 1000 || info.Sheets[0].ColumnCount != 26 {
		t.Errorf("unexpected grid properties: %+v", info.Sheets[0])
	}
	if info.Sheets[1].Index != 1 {
		t.Errorf("unexpected sheet index: %+v", info.Sheets[1])
	}
}

func TestToSpreadsheetInfoDerivesURL(t *testing.T) {
	info := toSpreadsheetInfo(&sheets.Spreadsheet{SpreadsheetId: "ss-2"})

	want := "https://docs.google.com/spreadsheets/d/ss-2/edit"
	if info.URL != want {
		t.Errorf("expected derived URL %q, got %q", want, info.URL)
	}
}

func TestParseValues(t *testing.T) {
	values, err := ParseValues(`[["Name","Age"],["Ana",30],["Ben",null]]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(values) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(values))
	}
	if values[0][0] != "Name" {
		t.Errorf("unexpected first cell: %v", values[0][0])
	}
	if values[1][1] != float64(30) {
		t.Errorf("expected numeric cell parsed as float64, got %T %v", values[1][1], values[1][1])
	}
	if values[2][1] != nil {
		t.Errorf("expected null cell to be nil, got %v", values[2][1])
	}
}

func TestParseValuesErrors(t *testing.T) {
	if _, err := ParseValues("not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := ParseValues(`"flat string"`); err == nil {
		t.Error("expected error for non-array JSON")
	}
	if _, err := ParseValues(`[]`); err == nil {
		t.Error("expected error for empty rows")
	}
}

func TestEscapeQueryTerm(t *testing.T) {
	if got := escapeQueryTerm("Q3 'draft'"); got != `Q3 \'draft\'` {
		t.Errorf("unexpected escaped term: %q", got)
	}
}
