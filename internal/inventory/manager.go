package inventory

import (
	"context"

	"github.com/driveaudit/driveaudit/internal/api"
	"github.com/driveaudit/driveaudit/internal/logging"
	"github.com/driveaudit/driveaudit/internal/types"
	"github.com/driveaudit/driveaudit/internal/utils"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// Manager enumerates the file inventory of a shared drive
type Manager struct {
	client *api.Client
}

// NewManager creates a new inventory manager
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client}
}

// ListOptions configures inventory listing
type ListOptions struct {
	DriveID        string
	IncludeTrashed bool
	PageSize       int
	PageToken      string
}

// List fetches one page of the drive's file inventory
func (m *Manager) List(ctx context.Context, reqCtx *types.RequestContext, opts ListOptions) (*types.EntryListResult, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = utils.DefaultPageSize
	}

	call := m.client.Drive().Files.List().
		Corpora("drive").
		DriveId(opts.DriveID).
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		PageSize(int64(pageSize)).
		Fields(googleapi.Field(utils.ListFields))

	if !opts.IncludeTrashed {
		call = call.Q("trashed = false")
	}
	if opts.PageToken != "" {
		call = call.PageToken(opts.PageToken)
	}

	result, err := api.ExecuteWithRetry(ctx, m.client, "drive", reqCtx, func() (*drive.FileList, error) {
		return call.Do()
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*types.Entry, len(result.Files))
	for i, f := range result.Files {
		entries[i] = convertEntry(f)
	}

	return &types.EntryListResult{
		Entries:       entries,
		NextPageToken: result.NextPageToken,
	}, nil
}

// ListAll fetches the complete inventory by following pagination. Any page
// failure aborts the run.
func (m *Manager) ListAll(ctx context.Context, reqCtx *types.RequestContext, opts ListOptions) ([]*types.Entry, error) {
	logger := m.client.Logger().WithTraceID(reqCtx.TraceID)

	entries, err := collect(opts.PageToken, func(pageToken string) (*types.EntryListResult, error) {
		opts.PageToken = pageToken
		page, err := m.List(ctx, reqCtx, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug("Fetched inventory page",
			logging.F("entries", len(page.Entries)),
			logging.F("hasMore", page.NextPageToken != ""),
		)
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Found total files", logging.F("count", len(entries)))
	return entries, nil
}

// pageFunc fetches one page for the given continuation token
type pageFunc func(pageToken string) (*types.EntryListResult, error)

// collect accumulates entries across pages until the continuation token runs
// out. Factored out of ListAll so pagination is testable without a service.
func collect(startToken string, fetch pageFunc) ([]*types.Entry, error) {
	var entries []*types.Entry
	pageToken := startToken

	for {
		page, err := fetch(pageToken)
		if err != nil {
			return nil, err
		}

		entries = append(entries, page.Entries...)

		if page.NextPageToken == "" {
			return entries, nil
		}
		pageToken = page.NextPageToken
	}
}

// convertEntry maps a Drive API file to an audit entry
func convertEntry(f *drive.File) *types.Entry {
	entry := &types.Entry{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Parents:      f.Parents,
		CreatedTime:  f.CreatedTime,
		ModifiedTime: f.ModifiedTime,
		TrashedTime:  f.TrashedTime,
		WebViewLink:  f.WebViewLink,
	}

	if f.LastModifyingUser != nil {
		entry.LastModifyingUser = f.LastModifyingUser.DisplayName
	}

	return entry
}
