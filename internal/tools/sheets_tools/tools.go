package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/sheets"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// RegisterSheetsTools registers all Sheets tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getTool := mcp.NewTool("sheets_get_spreadsheet",
		mcp.WithDescription("Get metadata of a spreadsheet including its sheets"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)
	s.AddTool(getTool, common.InstrumentedHandler("sheets_get_spreadsheet", "sheets", "get_spreadsheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.SheetsClient().GetSpreadsheet(ctx, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get spreadsheet: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	listSpreadsheetsTool := mcp.NewTool("sheets_list_spreadsheets",
		mcp.WithDescription("List spreadsheets, optionally filtered by name"),
		mcp.WithString("query",
			mcp.Description("Name filter (substring match)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of spreadsheets to return (default 25)"),
		),
	)
	s.AddTool(listSpreadsheetsTool, common.InstrumentedHandler("sheets_list_spreadsheets", "sheets", "list_spreadsheets", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			entries, err := sc.SheetsClient().ListSpreadsheets(ctx,
				common.OptionalStringArg(args, "query", ""),
				common.IntArg(args, "maxResults", 25))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list spreadsheets: %v", err)), nil
			}
			return common.JSONResult(entries)
		}))

	listSheetsTool := mcp.NewTool("sheets_list_sheets",
		mcp.WithDescription("List the sheets (tabs) of a spreadsheet"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)
	s.AddTool(listSheetsTool, common.InstrumentedHandler("sheets_list_sheets", "sheets", "list_sheets", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			sheetList, err := sc.SheetsClient().ListSheets(ctx, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list sheets: %v", err)), nil
			}
			return common.JSONResult(sheetList)
		}))

	getValuesTool := mcp.NewTool("sheets_get_values",
		mcp.WithDescription("Read cell values from a range in A1 notation"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Range in A1 notation (e.g. 'Sheet1!A1:D10')"),
		),
	)
	s.AddTool(getValuesTool, common.InstrumentedHandler("sheets_get_values", "sheets", "get_values", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			readRange, err := common.StringArg(args, "range")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			values, err := sc.SheetsClient().GetValues(ctx, spreadsheetID, readRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get values: %v", err)), nil
			}
			return common.JSONResult(values)
		}))

	if !sc.ReadOnly() {
		registerSheetsMutationTools(s, sc)
	}

	return nil
}

func registerSheetsMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTool := mcp.NewTool("sheets_create_spreadsheet",
		mcp.WithDescription("Create a new spreadsheet"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Spreadsheet title"),
		),
		mcp.WithString("sheetTitles",
			mcp.Description("Comma-separated titles for the initial sheets (default one sheet named 'Sheet1')"),
		),
	)
	s.AddTool(createTool, common.InstrumentedHandler("sheets_create_spreadsheet", "sheets", "create_spreadsheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			title, err := common.StringArg(args, "title")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.SheetsClient().CreateSpreadsheet(ctx, title, common.StringListArg(args, "sheetTitles"))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create spreadsheet: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	updateValuesTool := mcp.NewTool("sheets_update_values",
		mcp.WithDescription("Write cell values to a range. Values are a JSON array of rows."),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Range in A1 notation (e.g. 'Sheet1!A1')"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description(`JSON array of rows, e.g. [["Name","Count"],["widgets",42]]`),
		),
		mcp.WithString("valueInputOption",
			mcp.Description("'USER_ENTERED' (parse formulas and formats, default) or 'RAW'"),
		),
	)
	s.AddTool(updateValuesTool, common.InstrumentedHandler("sheets_update_values", "sheets", "update_values", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			writeRange, err := common.StringArg(args, "range")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			valuesJSON, err := common.StringArg(args, "values")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			values, err := sheets.ParseValues(valuesJSON)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			result, err := sc.SheetsClient().UpdateValues(ctx, spreadsheetID, writeRange, values,
				common.OptionalStringArg(args, "valueInputOption", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update values: %v", err)), nil
			}
			return common.JSONResult(result)
		}))

	appendValuesTool := mcp.NewTool("sheets_append_values",
		mcp.WithDescription("Append rows after the last row of data in a range"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Range locating the table to append to (e.g. 'Sheet1!A:D')"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("JSON array of rows to append"),
		),
		mcp.WithString("valueInputOption",
			mcp.Description("'USER_ENTERED' (default) or 'RAW'"),
		),
	)
	s.AddTool(appendValuesTool, common.InstrumentedHandler("sheets_append_values", "sheets", "append_values", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			appendRange, err := common.StringArg(args, "range")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			valuesJSON, err := common.StringArg(args, "values")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			values, err := sheets.ParseValues(valuesJSON)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			result, err := sc.SheetsClient().AppendValues(ctx, spreadsheetID, appendRange, values,
				common.OptionalStringArg(args, "valueInputOption", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to append values: %v", err)), nil
			}
			return common.JSONResult(result)
		}))

	clearValuesTool := mcp.NewTool("sheets_clear_values",
		mcp.WithDescription("Clear cell values in a range. Formatting is preserved."),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("Range in A1 notation to clear"),
		),
	)
	s.AddTool(clearValuesTool, common.InstrumentedHandler("sheets_clear_values", "sheets", "clear_values", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			clearRange, err := common.StringArg(args, "range")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			cleared, err := sc.SheetsClient().ClearValues(ctx, spreadsheetID, clearRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to clear values: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Cleared range %s", cleared)), nil
		}))

	addSheetTool := mcp.NewTool("sheets_add_sheet",
		mcp.WithDescription("Add a sheet (tab) to a spreadsheet"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new sheet"),
		),
	)
	s.AddTool(addSheetTool, common.InstrumentedHandler("sheets_add_sheet", "sheets", "add_sheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			title, err := common.StringArg(args, "title")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			sheet, err := sc.SheetsClient().AddSheet(ctx, spreadsheetID, title)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add sheet: %v", err)), nil
			}
			return common.JSONResult(sheet)
		}))

	deleteSheetTool := mcp.NewTool("sheets_delete_sheet",
		mcp.WithDescription("Delete a sheet (tab) from a spreadsheet"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithNumber("sheetId",
			mcp.Required(),
			mcp.Description("Numeric sheet ID (from sheets_list_sheets)"),
		),
	)
	s.AddTool(deleteSheetTool, common.InstrumentedHandler("sheets_delete_sheet", "sheets", "delete_sheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			sheetID, ok := args["sheetId"].(float64)
			if !ok {
				return mcp.NewToolResultError("sheetId parameter is required"), nil
			}

			if err := sc.SheetsClient().DeleteSheet(ctx, spreadsheetID, int64(sheetID)); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete sheet: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Sheet %d deleted", int64(sheetID))), nil
		}))

	renameSheetTool := mcp.NewTool("sheets_rename_sheet",
		mcp.WithDescription("Rename a sheet (tab)"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithNumber("sheetId",
			mcp.Required(),
			mcp.Description("Numeric sheet ID (from sheets_list_sheets)"),
		),
		mcp.WithString("newTitle",
			mcp.Required(),
			mcp.Description("New sheet title"),
		),
	)
	s.AddTool(renameSheetTool, common.InstrumentedHandler("sheets_rename_sheet", "sheets", "rename_sheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			sheetID, ok := args["sheetId"].(float64)
			if !ok {
				return mcp.NewToolResultError("sheetId parameter is required"), nil
			}
			newTitle, err := common.StringArg(args, "newTitle")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.SheetsClient().RenameSheet(ctx, spreadsheetID, int64(sheetID), newTitle); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to rename sheet: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Sheet %d renamed to %s", int64(sheetID), newTitle)), nil
		}))

	shareTool := mcp.NewTool("sheets_share_spreadsheet",
		mcp.WithDescription("Share a spreadsheet with a user"),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet to share"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address to grant access to"),
		),
		mcp.WithString("role",
			mcp.Description("Access role: 'reader', 'commenter', 'writer' (default 'reader')"),
		),
		mcp.WithBoolean("sendNotification",
			mcp.Description("Send a notification email to the grantee (default true)"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedHandler("sheets_share_spreadsheet", "sheets", "share_spreadsheet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			spreadsheetID, err := common.StringArg(args, "spreadsheetId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.SheetsClient().ShareSpreadsheet(ctx, spreadsheetID, email,
				common.OptionalStringArg(args, "role", "reader"),
				common.BoolArg(args, "sendNotification", true)); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to share spreadsheet: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Spreadsheet shared with %s", email)), nil
		}))
}
