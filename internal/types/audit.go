package types

import "fmt"

// AuditSummary is the result of one audit run.
type AuditSummary struct {
	DriveID       string  `json:"driveId"`
	DriveName     string  `json:"driveName,omitempty"`
	SpreadsheetID string  `json:"spreadsheetId"`
	SheetName     string  `json:"sheetName,omitempty"`
	RootFolder    string  `json:"rootFolder,omitempty"`
	TotalEntries  int     `json:"totalEntries"`
	ReportRows    int     `json:"reportRows"`
	UpdatedCells  int     `json:"updatedCells"`
	ElapsedSecs   float64 `json:"elapsedSeconds"`
}

func (s *AuditSummary) Headers() []string {
	return []string{"Drive", "Sheet", "Entries", "Rows", "Cells", "Elapsed"}
}

func (s *AuditSummary) Rows() [][]string {
	drive := s.DriveName
	if drive == "" {
		drive = s.DriveID
	}
	sheet := s.SheetName
	if sheet == "" {
		sheet = s.SpreadsheetID
	}
	return [][]string{{
		drive,
		sheet,
		fmt.Sprintf("%d", s.TotalEntries),
		fmt.Sprintf("%d", s.ReportRows),
		fmt.Sprintf("%d", s.UpdatedCells),
		fmt.Sprintf("%.2fs", s.ElapsedSecs),
	}}
}

func (s *AuditSummary) EmptyMessage() string {
	return "No audit results"
}
