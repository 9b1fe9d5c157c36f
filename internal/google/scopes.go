package google

// Per-service OAuth scope sets. Each tool family requests exactly the
// scopes its operations need; Docs and Sheets additionally need Drive for
// listing and sharing.
var (
	CalendarScopes = []string{
		"https://www.googleapis.com/auth/calendar",
	}

	DocsScopes = []string{
		"https://www.googleapis.com/auth/documents",
		"https://www.googleapis.com/auth/drive",
	}

	DriveScopes = []string{
		"https://www.googleapis.com/auth/drive",
	}

	GmailScopes = []string{
		"https://www.googleapis.com/auth/gmail.modify",
		"https://www.googleapis.com/auth/gmail.readonly",
		"https://www.googleapis.com/auth/gmail.send",
		"https://www.googleapis.com/auth/gmail.compose",
	}

	// Meet meetings are Calendar events carrying conference data.
	MeetScopes = []string{
		"https://www.googleapis.com/auth/calendar",
	}

	SheetsScopes = []string{
		"https://www.googleapis.com/auth/spreadsheets",
		"https://www.googleapis.com/auth/drive",
	}
)
