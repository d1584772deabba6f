package utils

// OAuth scopes
const (
	ScopeDrive  = "https://www.googleapis.com/auth/drive"
	ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"
)

// AuditScopes are the scopes the audit run needs: full drive access for
// shared-drive enumeration plus spreadsheet write access.
var AuditScopes = []string{ScopeDrive, ScopeSheets}

// Retry configuration
const (
	DefaultMaxRetries   = 3
	DefaultRetryDelayMs = 1000
	MaxRetryDelayMs     = 32000
)

// Listing configuration
const (
	// DefaultPageSize is the files.list page size; 1000 is the API maximum.
	DefaultPageSize = 1000

	// ListFields is the field mask requested for every listing page.
	ListFields = "files(id, mimeType, name, createdTime, modifiedTime, lastModifyingUser(displayName), trashedTime, webViewLink, parents), nextPageToken"
)

// Report configuration
const (
	// ReportTimeLayout is the timestamp format emitted in report cells.
	ReportTimeLayout = "2006-01-02 15:04:05"

	// ReportClearRange is the full-column range cleared before each write.
	ReportClearRange = "A:ZZ"

	// FolderURLBase prefixes folder location hyperlinks.
	FolderURLBase = "https://drive.google.com/drive/folders/"
)

// SchemaVersion identifies the JSON output envelope shape.
const SchemaVersion = "1"
