package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
)

// Column headers, in emitted order
const (
	ColumnName              = "name"
	ColumnCreatedTime       = "createdTime"
	ColumnModifiedTime      = "modifiedTime"
	ColumnLastModifyingUser = "lastModifyingUser"
	ColumnPath              = "path"
	ColumnTrashedTime       = "trashedTime"
)

// Options configures report shaping
type Options struct {
	// IncludeFolders keeps folder rows in the report
	IncludeFolders bool
	// IncludeTrashed adds the trashedTime column
	IncludeTrashed bool
	// RootFolderName scopes the report to the subtree under that folder
	RootFolderName string
}

// Grid is the tabular report written to the spreadsheet: a header row
// followed by one row per audited entry.
type Grid struct {
	Values [][]interface{} `json:"values"`
}

// RowCount returns the number of data rows (excluding the header)
func (g *Grid) RowCount() int {
	if len(g.Values) == 0 {
		return 0
	}
	return len(g.Values) - 1
}

// Build shapes annotated entries into the report grid. Entries must already
// carry their derived Path and Location.
func Build(entries []*types.Entry, opts Options) *Grid {
	columns := []string{
		ColumnName,
		ColumnCreatedTime,
		ColumnModifiedTime,
		ColumnLastModifyingUser,
		ColumnPath,
	}
	if opts.IncludeTrashed {
		columns = append(columns, ColumnTrashedTime)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}

	values := [][]interface{}{header}
	for _, e := range entries {
		if !include(e, opts) {
			continue
		}
		values = append(values, buildRow(e, columns))
	}

	return &Grid{Values: values}
}

// include applies the folder and root-subtree filters
func include(e *types.Entry, opts Options) bool {
	if e.IsFolder() && !opts.IncludeFolders {
		return false
	}
	if opts.RootFolderName != "" && !strings.HasPrefix(e.Path, opts.RootFolderName+"/") {
		return false
	}
	return true
}

func buildRow(e *types.Entry, columns []string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		switch c {
		case ColumnName:
			row[i] = hyperlink(e.WebViewLink, e.Name)
		case ColumnCreatedTime:
			row[i] = formatTime(e.CreatedTime)
		case ColumnModifiedTime:
			row[i] = formatTime(e.ModifiedTime)
		case ColumnLastModifyingUser:
			row[i] = e.LastModifyingUser
		case ColumnPath:
			row[i] = hyperlink(e.Location, e.Path)
		case ColumnTrashedTime:
			row[i] = formatTime(e.TrashedTime)
		}
	}
	return row
}

// hyperlink builds a HYPERLINK formula cell. With no target URL the label is
// emitted as a plain value.
func hyperlink(url, label string) string {
	if url == "" {
		return label
	}
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, escapeFormulaString(url), escapeFormulaString(label))
}

// escapeFormulaString doubles quotes per spreadsheet formula string rules
func escapeFormulaString(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// formatTime reformats an RFC 3339 API timestamp for the report. Values that
// fail to parse pass through unchanged; a malformed timestamp is not worth
// aborting an audit over.
func formatTime(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format(utils.ReportTimeLayout)
}
