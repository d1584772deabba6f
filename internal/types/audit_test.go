package types

import "testing"

func TestAuditSummary_Rows(t *testing.T) {
	s := &AuditSummary{
		DriveID:       "drive123",
		DriveName:     "Engineering",
		SpreadsheetID: "sheet456",
		SheetName:     "Engineering/Designs",
		TotalEntries:  42,
		ReportRows:    40,
		UpdatedCells:  205,
		ElapsedSecs:   3.14159,
	}

	rows := s.Rows()
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if len(row) != len(s.Headers()) {
		t.Fatalf("row has %d cells, headers have %d", len(row), len(s.Headers()))
	}
	if row[0] != "Engineering" {
		t.Errorf("drive cell = %q", row[0])
	}
	if row[1] != "Engineering/Designs" {
		t.Errorf("sheet cell = %q", row[1])
	}
	if row[2] != "42" || row[3] != "40" || row[4] != "205" {
		t.Errorf("count cells = %v", row[2:5])
	}
	if row[5] != "3.14s" {
		t.Errorf("elapsed cell = %q, want %q", row[5], "3.14s")
	}
}

func TestAuditSummary_RowsFallsBackToIDs(t *testing.T) {
	s := &AuditSummary{DriveID: "drive123", SpreadsheetID: "sheet456"}

	row := s.Rows()[0]
	if row[0] != "drive123" {
		t.Errorf("drive cell = %q, want the drive ID", row[0])
	}
	if row[1] != "sheet456" {
		t.Errorf("sheet cell = %q, want the spreadsheet ID", row[1])
	}
}
