package sheets

import (
	"context"
	"fmt"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// spreadsheetMimeType is the Drive MIME type for Google Sheets
// spreadsheets.
const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// Client wraps the Google Sheets and Drive API services. Drive is used for
// listing, sharing and folder placement of spreadsheets.
type Client struct {
	svc      *sheets.Service
	driveSvc *drive.Service

	// folderID is the parent folder for newly created spreadsheets.
	// Empty means the Drive root.
	folderID string
}

// NewClient creates a Sheets client from pre-resolved client options.
// folderID, when non-empty, parents every created spreadsheet.
func NewClient(ctx context.Context, folderID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		svc:      svc,
		driveSvc: driveSvc,
		folderID: folderID,
	}, nil
}

// CreateSpreadsheet creates a spreadsheet, optionally with named sheets.
// When the client is configured with a parent folder, the spreadsheet is
// moved there.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string, sheetTitles []string) (*SpreadsheetInfo, error) {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}
	for _, name := range sheetTitles {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{Title: name},
		})
	}

	created, err := c.svc.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if c.folderID != "" {
		_, err := c.driveSvc.Files.Update(created.SpreadsheetId, nil).
			AddParents(c.folderID).
			RemoveParents("root").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to move spreadsheet to folder: %w", err)
		}
	}

	return toSpreadsheetInfo(created), nil
}

// GetSpreadsheet retrieves spreadsheet metadata including its sheets.
func (c *Client) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error) {
	spreadsheet, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}
	return toSpreadsheetInfo(spreadsheet), nil
}

// ListSpreadsheets lists Google Sheets spreadsheets, optionally filtered
// by a name substring.
func (c *Client) ListSpreadsheets(ctx context.Context, nameQuery string, maxResults int64) ([]SpreadsheetListEntry, error) {
	query := fmt.Sprintf("mimeType='%s' and trashed=false", spreadsheetMimeType)
	if nameQuery != "" {
		query += fmt.Sprintf(" and name contains '%s'", escapeQueryTerm(nameQuery))
	}

	call := c.driveSvc.Files.List().
		Q(query).
		Fields("files(id, name, createdTime, modifiedTime, webViewLink)").
		OrderBy("modifiedTime desc")
	if maxResults > 0 {
		call = call.PageSize(maxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list spreadsheets: %w", err)
	}

	var entries []SpreadsheetListEntry
	for _, f := range resp.Files {
		entries = append(entries, SpreadsheetListEntry{
			ID:           f.Id,
			Name:         f.Name,
			CreatedTime:  f.CreatedTime,
			ModifiedTime: f.ModifiedTime,
			WebViewLink:  f.WebViewLink,
		})
	}

	return entries, nil
}

// ListSheets lists the sheets of a spreadsheet.
func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error) {
	spreadsheet, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	var infos []SheetInfo
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			infos = append(infos, toSheetInfo(sheet.Properties))
		}
	}

	return infos, nil
}

// GetValues reads a range of cells in A1 notation, e.g. "Sheet1!A1:C10".
func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string) (*ValueRange, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}

	return &ValueRange{
		Range:  resp.Range,
		Values: resp.Values,
	}, nil
}

// UpdateValues overwrites a range of cells. valueInputOption is "RAW" or
// "USER_ENTERED"; empty defaults to USER_ENTERED so formulas and dates are
// interpreted.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]interface{}, valueInputOption string) (*UpdateResult, error) {
	if valueInputOption == "" {
		valueInputOption = "USER_ENTERED"
	}

	resp, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update values: %w", err)
	}

	return &UpdateResult{
		UpdatedRange:   resp.UpdatedRange,
		UpdatedRows:    resp.UpdatedRows,
		UpdatedColumns: resp.UpdatedColumns,
		UpdatedCells:   resp.UpdatedCells,
	}, nil
}

// AppendValues appends rows after the last row with data in a range.
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, appendRange string, values [][]interface{}, valueInputOption string) (*UpdateResult, error) {
	if valueInputOption == "" {
		valueInputOption = "USER_ENTERED"
	}

	resp, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, appendRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption(valueInputOption).InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append values: %w", err)
	}

	result := &UpdateResult{}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.UpdatedRows = resp.Updates.UpdatedRows
		result.UpdatedColumns = resp.Updates.UpdatedColumns
		result.UpdatedCells = resp.Updates.UpdatedCells
	}

	return result, nil
}

// ClearValues clears the content of a range, keeping formatting.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, clearRange string) (string, error) {
	resp, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to clear values: %w", err)
	}
	return resp.ClearedRange, nil
}

// AddSheet adds a sheet to a spreadsheet.
func (c *Client) AddSheet(ctx context.Context, spreadsheetID, title string) (*SheetInfo, error) {
	resp, err := c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{Title: title},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil && resp.Replies[0].AddSheet.Properties != nil {
		info := toSheetInfo(resp.Replies[0].AddSheet.Properties)
		return &info, nil
	}

	return &SheetInfo{Title: title}, nil
}

// DeleteSheet removes a sheet from a spreadsheet by sheet ID.
func (c *Client) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	_, err := c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	return nil
}

// RenameSheet renames a sheet by sheet ID.
func (c *Client) RenameSheet(ctx context.Context, spreadsheetID string, sheetID int64, newTitle string) error {
	_, err := c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sheetID,
				Title:   newTitle,
			},
			Fields: "title",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	return nil
}

// ShareSpreadsheet grants a user access via Drive permissions. Role is one
// of "reader", "commenter" or "writer".
func (c *Client) ShareSpreadsheet(ctx context.Context, spreadsheetID, email, role string, sendNotification bool) error {
	perm := &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}

	_, err := c.driveSvc.Permissions.Create(spreadsheetID, perm).
		SendNotificationEmail(sendNotification).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to share spreadsheet: %w", err)
	}

	return nil
}

func (c *Client) batchUpdate(ctx context.Context, spreadsheetID string, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	return c.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
}
