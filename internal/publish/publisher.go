package publish

import (
	"context"
	"fmt"

	"github.com/driveaudit/driveaudit/internal/api"
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/report"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
	"google.golang.org/api/sheets/v4"
)

// Publisher writes audit report grids to a spreadsheet
type Publisher struct {
	client *api.Client
}

// NewPublisher creates a new publisher
func NewPublisher(client *api.Client) *Publisher {
	return &Publisher{client: client}
}

// SheetTitle derives the per-run tab name from the drive and optional root
// folder, matching the audit's tab naming convention.
func SheetTitle(driveName, rootFolderName string) string {
	if rootFolderName == "" {
		return driveName
	}
	return driveName + "/" + rootFolderName
}

// EnsureSheet makes sure a tab with the given title exists on the
// spreadsheet, creating it when absent.
func (p *Publisher) EnsureSheet(ctx context.Context, reqCtx *types.RequestContext, spreadsheetID, title string) error {
	getCall := p.client.Sheets().Spreadsheets.Get(spreadsheetID)

	spreadsheet, err := api.ExecuteWithRetry(ctx, p.client, "sheets", reqCtx, func() (*sheets.Spreadsheet, error) {
		return getCall.Do()
	})
	if err != nil {
		return err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return nil
		}
	}

	batchCall := p.client.Sheets().Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	})

	_, err = api.ExecuteWithRetry(ctx, p.client, "sheets", reqCtx, func() (*sheets.BatchUpdateSpreadsheetResponse, error) {
		return batchCall.Do()
	})
	if err != nil {
		return err
	}

	p.client.Logger().WithTraceID(reqCtx.TraceID).Info("Created sheet tab",
		logging.F("spreadsheetId", spreadsheetID),
		logging.F("title", title),
	)
	return nil
}

// Publish clears the report range and writes the grid in one batch. A full
// overwrite keeps stale rows from a previous, larger audit out of the report.
func (p *Publisher) Publish(ctx context.Context, reqCtx *types.RequestContext, spreadsheetID, sheetName string, grid *report.Grid) (int, error) {
	rangeNotation := QualifyRange(sheetName, utils.ReportClearRange)
	logger := p.client.Logger().WithTraceID(reqCtx.TraceID)

	clearCall := p.client.Sheets().Spreadsheets.Values.Clear(spreadsheetID, rangeNotation, &sheets.ClearValuesRequest{})
	_, err := api.ExecuteWithRetry(ctx, p.client, "sheets", reqCtx, func() (*sheets.ClearValuesResponse, error) {
		return clearCall.Do()
	})
	if err != nil {
		return 0, err
	}
	logger.Info("Cleared sheet", logging.F("spreadsheetId", spreadsheetID), logging.F("range", rangeNotation))

	valueRange := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         grid.Values,
	}
	updateCall := p.client.Sheets().Spreadsheets.Values.Update(spreadsheetID, rangeNotation, valueRange).
		ValueInputOption("USER_ENTERED")

	result, err := api.ExecuteWithRetry(ctx, p.client, "sheets", reqCtx, func() (*sheets.UpdateValuesResponse, error) {
		return updateCall.Do()
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Written cells to sheet",
		logging.F("spreadsheetId", spreadsheetID),
		logging.F("updatedCells", result.UpdatedCells),
	)
	return int(result.UpdatedCells), nil
}

// QualifyRange prefixes a range with a quoted sheet name when one is given
func QualifyRange(sheetName, rangeNotation string) string {
	if sheetName == "" {
		return rangeNotation
	}
	return fmt.Sprintf("'%s'!%s", sheetName, rangeNotation)
}
