package audit

import (
	"context"
	"fmt"

	"github.com/driveaudit/driveaudit/internal/api"
	"github.com/driveaudit/driveaudit/internal/drives"
	"github.com/driveaudit/driveaudit/internal/inventory"
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/publish"
	"github.com/driveaudit/driveaudit/internal/report"
	"github.com/driveaudit/driveaudit/internal/resolver"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
)

// Options configures one audit run
type Options struct {
	DriveID        string
	SpreadsheetID  string
	IncludeFolders bool
	IncludeTrashed bool
	SeparateSheet  bool
	RootFolderID   string
	PageSize       int
}

// Runner performs a full audit: enumerate, resolve, shape, publish. One pass,
// no state between runs; any remote failure aborts.
type Runner struct {
	inventory *inventory.Manager
	drives    *drives.Manager
	publisher *publish.Publisher
	logger    logging.Logger
}

// NewRunner creates a runner over the given API client
func NewRunner(client *api.Client) *Runner {
	return &Runner{
		inventory: inventory.NewManager(client),
		drives:    drives.NewManager(client),
		publisher: publish.NewPublisher(client),
		logger:    client.Logger(),
	}
}

// Run executes the audit and returns a summary. ElapsedSecs is left for the
// caller, which owns run timing.
func (r *Runner) Run(ctx context.Context, opts Options) (*types.AuditSummary, error) {
	listCtx := api.NewRequestContext(opts.DriveID, types.RequestTypeListOrSearch)

	entries, err := r.inventory.ListAll(ctx, listCtx, inventory.ListOptions{
		DriveID:        opts.DriveID,
		IncludeTrashed: opts.IncludeTrashed,
		PageSize:       opts.PageSize,
	})
	if err != nil {
		return nil, err
	}

	index := types.NewEntryIndex(entries)
	resolver.Annotate(entries, index)

	rootName := ""
	if opts.RootFolderID != "" {
		rootName = index.FolderName(opts.RootFolderID)
		if rootName == "" {
			return nil, utils.NewAppError(utils.NewCLIError(utils.ErrCodeInvalidArgument,
				fmt.Sprintf("Root folder not found in drive listing: %s", opts.RootFolderID)).
				WithContext("driveId", opts.DriveID).
				Build())
		}
	}

	summary := &types.AuditSummary{
		DriveID:       opts.DriveID,
		SpreadsheetID: opts.SpreadsheetID,
		RootFolder:    rootName,
		TotalEntries:  len(entries),
	}

	sheetName := ""
	if opts.SeparateSheet {
		metaCtx := api.NewRequestContext(opts.DriveID, types.RequestTypeGetByID)
		drive, err := r.drives.Get(ctx, metaCtx, opts.DriveID)
		if err != nil {
			return nil, err
		}
		summary.DriveName = drive.Name

		sheetName = publish.SheetTitle(drive.Name, rootName)
		writeCtx := api.NewRequestContext(opts.DriveID, types.RequestTypeSheetWrite)
		writeCtx.SpreadsheetID = opts.SpreadsheetID
		if err := r.publisher.EnsureSheet(ctx, writeCtx, opts.SpreadsheetID, sheetName); err != nil {
			return nil, err
		}
	}
	summary.SheetName = sheetName

	grid := report.Build(entries, report.Options{
		IncludeFolders: opts.IncludeFolders,
		IncludeTrashed: opts.IncludeTrashed,
		RootFolderName: rootName,
	})
	summary.ReportRows = grid.RowCount()

	publishCtx := api.NewRequestContext(opts.DriveID, types.RequestTypeSheetWrite)
	publishCtx.SpreadsheetID = opts.SpreadsheetID
	cells, err := r.publisher.Publish(ctx, publishCtx, opts.SpreadsheetID, sheetName, grid)
	if err != nil {
		return nil, err
	}
	summary.UpdatedCells = cells

	return summary, nil
}
