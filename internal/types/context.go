package types

// RequestType identifies the kind of remote call for logging and error
// classification.
type RequestType string

const (
	RequestTypeListOrSearch RequestType = "list_or_search"
	RequestTypeGetByID      RequestType = "get_by_id"
	RequestTypeSheetWrite   RequestType = "sheet_write"
)

// RequestContext carries per-call metadata through the API layer.
type RequestContext struct {
	DriveID       string      `json:"driveId,omitempty"`
	SpreadsheetID string      `json:"spreadsheetId,omitempty"`
	RequestType   RequestType `json:"requestType"`
	TraceID       string      `json:"traceId"`
}
